package handlers

import (
	"log/slog"
	"net/http"

	"Streamsphere/models"
	"Streamsphere/services"
	"Streamsphere/telemetry"
)

type createMovieRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PosterURL   string `json:"posterUrl"`
	VideoURL    string `json:"videoUrl"`
	VideoPath   string `json:"videoPath"`
}

// CreateMovieHandler stores a creator upload. The session is guaranteed to be
// a creator by the route middleware.
func CreateMovieHandler(w http.ResponseWriter, r *http.Request) {
	session, err := services.CurrentSession(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	upload := &models.CreatorUpload{
		Title:        req.Title,
		Description:  req.Description,
		Category:     models.NormalizeCategory(req.Category),
		Poster:       req.PosterURL,
		VideoPath:    req.VideoPath,
		VideoURL:     req.VideoURL,
		CreatorEmail: session.Email,
		Approved:     true,
	}

	if err := services.CreateUpload(upload); err != nil {
		slog.Error("Failed to create upload", "creator", session.Email, "error", err)
		telemetry.CaptureError(err, map[string]string{"operation": "create_upload"})
		writeError(w, http.StatusInternalServerError, "Failed to save movie")
		return
	}

	slog.Info("Creator upload stored", "id", upload.ID, "creator", session.Email, "category", upload.Category)
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "movie": upload})
}

// PublicMoviesHandler lists approved creator uploads, newest first.
func PublicMoviesHandler(w http.ResponseWriter, r *http.Request) {
	uploads, err := services.ListPublicUploads()
	if err != nil {
		slog.Error("Failed to list uploads", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load creator uploads.")
		return
	}
	if uploads == nil {
		uploads = []models.CreatorUpload{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "movies": uploads})
}
