package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"Streamsphere/metrics"
	"Streamsphere/models"
	"Streamsphere/services"
)

// GenresHandler returns the genre list plus the selectable filter years.
func GenresHandler(w http.ResponseWriter, r *http.Request) {
	genres, err := tmdb.Genres(r.Context())
	if err != nil {
		slog.Error("Failed to load genres", "error", err)
		metrics.CatalogErrors.WithLabelValues("genres").Inc()
		writeError(w, http.StatusBadGateway, "Failed to load genres.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"genres": genres,
		"years":  services.YearOptions(time.Now()),
	})
}

// TrendingHandler returns the ranked trending carousel cards.
func TrendingHandler(w http.ResponseWriter, r *http.Request) {
	titles, err := tmdb.Trending(r.Context())
	if err != nil {
		slog.Error("Failed to load trending movies", "error", err)
		metrics.CatalogErrors.WithLabelValues("trending").Inc()
		writeError(w, http.StatusBadGateway, "Failed to load trending movies. Please try again later.")
		return
	}
	renderer := genreRenderer(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"cards": renderer.TrendingCards(titles),
	})
}

// BrowseHandler runs the filter/search state machine for the query
// parameters and returns the rendered section.
func BrowseHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	explorer := services.NewExplorer()
	explorer.SetFilters(models.FilterState{
		Genre: q.Get("genre"),
		Year:  q.Get("year"),
		Sort:  q.Get("sort"),
		Query: q.Get("query"),
	})
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		explorer.PinPage(page)
	}

	plan := explorer.Plan()

	resp := map[string]interface{}{
		"ok":              true,
		"mode":            plan.Mode,
		"sectionTitle":    plan.SectionTitle,
		"trendingVisible": plan.TrendingVisible,
		"clearVisible":    plan.ClearVisible,
	}

	if plan.Source == services.SourceCreator {
		uploads, err := services.ListPublicUploads()
		if err != nil {
			slog.Error("Failed to load sports uploads", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load Sports.")
			return
		}
		items := services.FilterUploadsByCategory(uploads, plan.Category)
		items = services.SortUploads(items, plan.SortKey)
		resp["creatorCards"] = services.CreatorCards(items)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	var (
		titles []models.Title
		err    error
	)
	switch plan.Mode {
	case services.BrowseSearching:
		titles, err = tmdb.Search(r.Context(), plan.Query)
	default:
		titles, err = tmdb.Discover(r.Context(), plan.Discover)
	}
	if err != nil {
		slog.Error("Browse fetch failed", "mode", plan.Mode, "error", err)
		metrics.CatalogErrors.WithLabelValues(string(plan.Mode)).Inc()
		if plan.Mode == services.BrowseSearching {
			writeError(w, http.StatusBadGateway, "Search failed. Please try again.")
		} else {
			writeError(w, http.StatusBadGateway, "Failed to load movies. Please try again later.")
		}
		return
	}

	renderer := genreRenderer(r.Context())
	resp["cards"] = renderer.Cards(titles)
	writeJSON(w, http.StatusOK, resp)
}
