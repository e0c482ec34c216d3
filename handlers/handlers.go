package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"Streamsphere/config"
	"Streamsphere/models"
	"Streamsphere/services"
)

var (
	cfg       *config.Config
	tmdb      *services.TMDB
	resolver  *services.Resolver
	presigner *services.Presigner

	genreMu    sync.Mutex
	genreCache map[int]string
)

// Init wires the handler package's collaborators. Call once at startup.
func Init(c *config.Config, t *services.TMDB, r *services.Resolver, p *services.Presigner) {
	cfg = c
	tmdb = t
	resolver = r
	presigner = p
	genreCache = nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// genreRenderer returns a card renderer backed by the cached genre map,
// fetching it on first use. A failed fetch falls back to an empty map (cards
// show "N/A" labels) and retries on the next request.
func genreRenderer(ctx context.Context) *services.CardRenderer {
	genreMu.Lock()
	defer genreMu.Unlock()

	if genreCache == nil {
		m, err := tmdb.GenreMap(ctx)
		if err == nil {
			genreCache = m
		} else {
			return services.NewCardRenderer(map[int]string{}, tmdb.ImageBase())
		}
	}
	return services.NewCardRenderer(genreCache, tmdb.ImageBase())
}

func userJSON(u *models.User) map[string]interface{} {
	out := map[string]interface{}{
		"email":             u.Email,
		"role":              u.Role,
		"creatorSubscribed": u.CreatorSubscribed,
	}
	if u.CreatorSubscribedUntil != 0 {
		out["creatorSubscribedUntil"] = u.CreatorSubscribedUntil
	}
	return out
}
