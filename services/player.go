package services

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"Streamsphere/models"
)

// hostedVideoPattern recognizes hosted-video URLs (watch?v=, /embed/ and
// short-link forms) and captures the video identifier.
var hostedVideoPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/)|youtu\.be/)([A-Za-z0-9_-]{6,})`)

const metaNotAvailable = "Not available"

// ExtractEmbedKey returns the hosted-video identifier embedded in url, if
// any.
func ExtractEmbedKey(url string) (string, bool) {
	m := hostedVideoPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// EmbedURL builds the embed player URL for a trailer key.
func EmbedURL(key string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&rel=0", key)
}

// Resolver turns a movie id or a creator-upload payload into playback state.
type Resolver struct {
	tmdb *TMDB
	// embedOverride forces embedded playback when a creator upload's URL
	// matches the hosted-video pattern, regardless of its declared
	// sourceType. Matches the original behavior; configurable because the
	// intent there was never confirmed.
	embedOverride bool
}

func NewResolver(tmdb *TMDB, embedOverride bool) *Resolver {
	return &Resolver{tmdb: tmdb, embedOverride: embedOverride}
}

// pickTrailerKey selects the trailer: first YouTube entry of type Trailer,
// else the first YouTube entry of any type.
func pickTrailerKey(videos []models.Video) (string, bool) {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return v.Key, true
		}
	}
	for _, v := range videos {
		if v.Site == "YouTube" {
			return v.Key, true
		}
	}
	return "", false
}

// ResolveMovie fetches the videos list for a catalog movie and opens a
// player. No usable trailer yields the unavailable mode, not an error; the
// error return covers the fetch itself failing.
func (r *Resolver) ResolveMovie(ctx context.Context, movieID int) (*models.PlayerState, error) {
	videos, err := r.tmdb.Videos(ctx, movieID)
	if err != nil {
		return nil, err
	}

	state := &models.PlayerState{ScrollLocked: true}
	key, ok := pickTrailerKey(videos)
	if !ok {
		state.Mode = models.PlayerUnavailable
		return state, nil
	}
	state.Mode = models.PlayerEmbedded
	state.EmbedKey = key
	state.EmbedURL = EmbedURL(key)
	return state, nil
}

// LoadMeta fetches details and credits concurrently and builds the meta
// panel once both resolve. A failure in either degrades to an unavailable
// panel rather than leaving the caller waiting on a partial one.
func (r *Resolver) LoadMeta(ctx context.Context, movieID int) *models.MetaPanel {
	var (
		wg         sync.WaitGroup
		details    *models.MovieDetails
		credits    *models.Credits
		detailsErr error
		creditsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		details, detailsErr = r.tmdb.Details(ctx, movieID)
	}()
	go func() {
		defer wg.Done()
		credits, creditsErr = r.tmdb.Credits(ctx, movieID)
	}()
	wg.Wait()

	if detailsErr != nil || creditsErr != nil {
		return &models.MetaPanel{Unavailable: true}
	}

	return &models.MetaPanel{
		Title:       details.Title,
		Description: details.Overview,
		Cast:        castItems(credits.Cast),
		Crew:        crewItems(credits.Crew),
	}
}

// AttachMeta loads the meta panel for an open player, dropping the result if
// the player was closed in the meantime.
func (r *Resolver) AttachMeta(ctx context.Context, state *models.PlayerState, movieID int) bool {
	gen := state.Generation()
	meta := r.LoadMeta(ctx, movieID)
	return state.SetMeta(gen, meta)
}

// ResolveUpload opens a player for a creator upload payload. The candidate
// URL follows the declared sourceType; with the override enabled, a
// hosted-video URL wins over the declared type. No metadata exists for
// uploads, so the panel carries the upload's own title/description and
// placeholder lists.
func (r *Resolver) ResolveUpload(payload *models.PlayerPayload) *models.PlayerState {
	state := &models.PlayerState{ScrollLocked: true}
	state.Meta = &models.MetaPanel{
		Title:       payload.Title,
		Description: payload.Description,
		Cast:        []models.MetaItem{{Name: metaNotAvailable}},
		Crew:        []models.MetaItem{{Name: metaNotAvailable}},
	}

	url := payload.CandidateURL()
	if url == "" {
		state.Mode = models.PlayerUnavailable
		return state
	}

	if r.embedOverride {
		if key, ok := ExtractEmbedKey(url); ok {
			state.Mode = models.PlayerEmbedded
			state.EmbedKey = key
			state.EmbedURL = EmbedURL(key)
			return state
		}
	}

	state.Mode = models.PlayerNativeFile
	state.SourceURL = url
	return state
}

func castItems(cast []models.CastMember) []models.MetaItem {
	if len(cast) == 0 {
		return []models.MetaItem{{Name: metaNotAvailable}}
	}
	if len(cast) > 8 {
		cast = cast[:8]
	}
	items := make([]models.MetaItem, 0, len(cast))
	for _, c := range cast {
		name := c.Name
		if name == "" {
			name = c.OriginalName
		}
		if name == "" {
			name = "Unknown"
		}
		items = append(items, models.MetaItem{Name: name, Role: c.Character})
	}
	return items
}

func crewItems(crew []models.CrewMember) []models.MetaItem {
	if len(crew) == 0 {
		return []models.MetaItem{{Name: metaNotAvailable}}
	}
	if len(crew) > 8 {
		crew = crew[:8]
	}
	items := make([]models.MetaItem, 0, len(crew))
	for _, c := range crew {
		name := c.Name
		if name == "" {
			name = "Unknown"
		}
		items = append(items, models.MetaItem{Name: name, Role: c.Job})
	}
	return items
}
