package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"Streamsphere/config"
	"Streamsphere/models"
	sharedhttp "Streamsphere/shared/http"
)

// TMDB is a typed client for the external movie metadata API. Base URL and
// key are injectable so tests can point it at a local fake.
type TMDB struct {
	apiKey    string
	baseURL   string
	imageBase string
	client    *http.Client
}

func NewTMDB(cfg *config.Config) *TMDB {
	return &TMDB{
		apiKey:    cfg.TMDBAPIKey,
		baseURL:   cfg.TMDBBaseURL,
		imageBase: cfg.TMDBImageBaseURL,
		client:    sharedhttp.DefaultClient,
	}
}

// ImageBase returns the poster image base URL.
func (t *TMDB) ImageBase() string {
	return t.imageBase
}

// DiscoverParams narrows a discovery query. Zero fields are omitted.
type DiscoverParams struct {
	Page   int
	Genre  string // genre id
	Year   string // 4-digit primary release year
	SortBy string // TMDB sort_by value, already mapped
}

func (t *TMDB) get(ctx context.Context, path string, params map[string]string, v interface{}) error {
	if params == nil {
		params = map[string]string{}
	}
	params["api_key"] = t.apiKey

	apiURL := sharedhttp.BuildQueryURL(t.baseURL+path, params)
	resp, err := sharedhttp.MakeRequest(ctx, apiURL, t.client)
	if err != nil {
		return err
	}
	return sharedhttp.DecodeJSONResponse(resp, v)
}

// Genres fetches the genre id→name list.
func (t *TMDB) Genres(ctx context.Context) ([]models.Genre, error) {
	var list models.GenreList
	if err := t.get(ctx, "/genre/movie/list", nil, &list); err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}
	return list.Genres, nil
}

// GenreMap fetches genres as an id→name map for label resolution.
func (t *TMDB) GenreMap(ctx context.Context) (map[int]string, error) {
	genres, err := t.Genres(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[int]string, len(genres))
	for _, g := range genres {
		m[g.ID] = g.Name
	}
	return m, nil
}

// Trending fetches this week's trending movies.
func (t *TMDB) Trending(ctx context.Context) ([]models.Title, error) {
	var page models.TitlePage
	if err := t.get(ctx, "/trending/movie/week", nil, &page); err != nil {
		return nil, fmt.Errorf("failed to load trending movies: %w", err)
	}
	return page.Results, nil
}

// Discover fetches a discovery page narrowed by the given params.
func (t *TMDB) Discover(ctx context.Context, p DiscoverParams) ([]models.Title, error) {
	params := map[string]string{}
	if p.Page > 0 {
		params["page"] = strconv.Itoa(p.Page)
	}
	if p.Genre != "" {
		params["with_genres"] = p.Genre
	}
	if p.Year != "" {
		params["primary_release_year"] = p.Year
	}
	if p.SortBy != "" {
		params["sort_by"] = p.SortBy
	}

	var page models.TitlePage
	if err := t.get(ctx, "/discover/movie", params, &page); err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	return page.Results, nil
}

// Search runs a text search. The query is percent-encoded by the URL builder.
func (t *TMDB) Search(ctx context.Context, query string) ([]models.Title, error) {
	params := map[string]string{
		"query":         query,
		"page":          "1",
		"include_adult": "false",
	}
	var page models.TitlePage
	if err := t.get(ctx, "/search/movie", params, &page); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return page.Results, nil
}

// Details fetches full details for one movie.
func (t *TMDB) Details(ctx context.Context, id int) (*models.MovieDetails, error) {
	var details models.MovieDetails
	if err := t.get(ctx, "/movie/"+strconv.Itoa(id), nil, &details); err != nil {
		return nil, fmt.Errorf("failed to load details: %w", err)
	}
	return &details, nil
}

// Videos fetches the videos list for one movie.
func (t *TMDB) Videos(ctx context.Context, id int) ([]models.Video, error) {
	var list models.VideoList
	if err := t.get(ctx, "/movie/"+strconv.Itoa(id)+"/videos", nil, &list); err != nil {
		return nil, fmt.Errorf("failed to load videos: %w", err)
	}
	return list.Results, nil
}

// Credits fetches cast and crew for one movie.
func (t *TMDB) Credits(ctx context.Context, id int) (*models.Credits, error) {
	var credits models.Credits
	if err := t.get(ctx, "/movie/"+strconv.Itoa(id)+"/credits", nil, &credits); err != nil {
		return nil, fmt.Errorf("failed to load credits: %w", err)
	}
	return &credits, nil
}
