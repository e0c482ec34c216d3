package services

import (
	"fmt"
	"strings"

	"Streamsphere/models"
)

// FallbackPoster is the placeholder image used when a title carries no poster
// or its poster fails to load.
const FallbackPoster = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMjgwIiBoZWlnaHQ9IjMwMCIgdmlld0JveD0iMCAwIDI4MCAzMDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+CjxyZWN0IHdpZHRoPSIyODAiIGhlaWdodD0iMzAwIiBmaWxsPSIjMzMzIi8+Cjx0ZXh0IHg9IjE0MCIgeT0iMTUwIiBmaWxsPSIjNjY2IiB0ZXh0LWFuY2hvcj0ibWlkZGxlIiBkeT0iLjNlbSI+Tm8gSW1hZ2U8L3RleHQ+Cjwvc3ZnPg=="

const creatorBadge = "Creator"

// CardView is the presentation-agnostic rendering of a catalog title.
type CardView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	Rating      string `json:"rating"`
	Year        string `json:"year"`
	GenreLabel  string `json:"genreLabel"`
	Description string `json:"description"`
}

// TrendingCardView is a CardView with its 1-based carousel rank.
type TrendingCardView struct {
	CardView
	Rank int `json:"rank"`
}

// CreatorCardView is the rendering of a creator upload. Payload is the typed
// click payload the playback resolver consumes; it round-trips through JSON
// without loss.
type CreatorCardView struct {
	ID      string               `json:"id"`
	Title   string               `json:"title"`
	Poster  string               `json:"poster"`
	Badge   string               `json:"badge"`
	Payload models.PlayerPayload `json:"payload"`
}

// CardRenderer maps titles to view models using the loaded genre map.
type CardRenderer struct {
	genres    map[int]string
	imageBase string
}

func NewCardRenderer(genres map[int]string, imageBase string) *CardRenderer {
	return &CardRenderer{genres: genres, imageBase: imageBase}
}

// Card renders one catalog title.
func (c *CardRenderer) Card(t models.Title) CardView {
	description := t.Overview
	if description == "" {
		description = "No description available."
	}
	return CardView{
		ID:          t.ID,
		Title:       t.Title,
		Poster:      c.posterURL(t.PosterPath),
		Rating:      FormatRating(t.VoteAverage),
		Year:        ReleaseYear(t.ReleaseDate),
		GenreLabel:  c.genreLabel(t.GenreIDs),
		Description: description,
	}
}

// Cards renders a title list.
func (c *CardRenderer) Cards(titles []models.Title) []CardView {
	cards := make([]CardView, 0, len(titles))
	for _, t := range titles {
		cards = append(cards, c.Card(t))
	}
	return cards
}

// TrendingCards renders the carousel: at most 10 titles, ranked from 1.
func (c *CardRenderer) TrendingCards(titles []models.Title) []TrendingCardView {
	if len(titles) > 10 {
		titles = titles[:10]
	}
	cards := make([]TrendingCardView, 0, len(titles))
	for i, t := range titles {
		cards = append(cards, TrendingCardView{CardView: c.Card(t), Rank: i + 1})
	}
	return cards
}

// CreatorCard renders one creator upload.
func CreatorCard(u models.CreatorUpload) CreatorCardView {
	poster := u.Poster
	if poster == "" {
		poster = FallbackPoster
	}
	return CreatorCardView{
		ID:      u.ID,
		Title:   u.Title,
		Poster:  poster,
		Badge:   creatorBadge,
		Payload: u.Payload(),
	}
}

// CreatorCards renders an upload list.
func CreatorCards(uploads []models.CreatorUpload) []CreatorCardView {
	cards := make([]CreatorCardView, 0, len(uploads))
	for _, u := range uploads {
		cards = append(cards, CreatorCard(u))
	}
	return cards
}

func (c *CardRenderer) posterURL(path string) string {
	if path == "" {
		return FallbackPoster
	}
	return c.imageBase + path
}

// FormatRating formats a vote average to one decimal, or "N/A" when absent.
func FormatRating(voteAverage float64) string {
	if voteAverage == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", voteAverage)
}

// ReleaseYear extracts the year from a release date, or "TBA" when unknown.
func ReleaseYear(releaseDate string) string {
	if len(releaseDate) < 4 {
		return "TBA"
	}
	return releaseDate[:4]
}

func (c *CardRenderer) genreLabel(ids []int) string {
	if len(ids) > 2 {
		ids = ids[:2]
	}
	var names []string
	for _, id := range ids {
		if name, ok := c.genres[id]; ok && name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "N/A"
	}
	return strings.Join(names, ", ")
}
