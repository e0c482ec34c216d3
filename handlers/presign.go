package handlers

import (
	"log/slog"
	"net/http"

	"Streamsphere/telemetry"
)

type presignRequest struct {
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// PresignHandler issues a presigned PUT URL for a direct object upload.
func PresignHandler(w http.ResponseWriter, r *http.Request) {
	if presigner == nil {
		writeError(w, http.StatusNotFound, "S3 not configured")
		return
	}

	var req presignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Type == "" || req.Filename == "" || req.ContentType == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	result, err := presigner.PresignPut(r.Context(), req.Type, req.Filename, req.ContentType)
	if err != nil {
		slog.Error("Presign failed", "type", req.Type, "error", err)
		telemetry.CaptureError(err, map[string]string{"operation": "presign"})
		writeError(w, http.StatusInternalServerError, "Presign failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"url":       result.URL,
		"key":       result.Key,
		"publicUrl": result.PublicURL,
	})
}
