package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"Streamsphere/metrics"
	"Streamsphere/models"

	"github.com/go-chi/chi/v5"
)

// MoviePlayerHandler resolves playback and metadata for a catalog movie. A
// failed videos fetch still opens the player without a trailer, matching the
// original behavior; it is not surfaced as an error.
func MoviePlayerHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	state, err := resolver.ResolveMovie(r.Context(), movieID)
	if err != nil {
		slog.Warn("Trailer resolution failed", "movie_id", movieID, "error", err)
		state = &models.PlayerState{Mode: models.PlayerUnavailable, ScrollLocked: true}
	}

	gen := state.Generation()
	state.SetMeta(gen, resolver.LoadMeta(r.Context(), movieID))

	metrics.PlayerResolves.WithLabelValues("movie", string(state.Mode)).Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "player": state})
}

// UploadPlayerHandler resolves playback for a creator-upload payload. The
// payload is validated at the boundary; malformed payloads are a 400.
func UploadPlayerHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.PlayerPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state := resolver.ResolveUpload(&payload)
	metrics.PlayerResolves.WithLabelValues("upload", string(state.Mode)).Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "player": state})
}
