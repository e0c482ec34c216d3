package models

import (
	"encoding/json"
	"fmt"
)

const (
	CategoryMovie     = "movie"
	CategoryWebseries = "webseries"
	CategorySports    = "sports"

	SourceFile = "file"
	SourceURL  = "url"
)

// CreatorUpload is a locally hosted media item submitted by a creator-role
// user. Exactly one of VideoPath/VideoURL is populated, per SourceType.
type CreatorUpload struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Poster       string `json:"poster,omitempty"`
	SourceType   string `json:"sourceType"`
	VideoPath    string `json:"videoPath,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
	CreatorEmail string `json:"creatorEmail"`
	CreatedAt    int64  `json:"createdAt"` // unix millis
	Approved     bool   `json:"approved"`
}

// NormalizeCategory maps free-form category input into the known set,
// defaulting to movie.
func NormalizeCategory(s string) string {
	switch s {
	case CategoryMovie, CategoryWebseries, CategorySports:
		return s
	}
	return CategoryMovie
}

// PlayerPayload is the typed card payload handed to the playback resolver on
// click. It replaces the JSON blob the original stuffed into a markup
// attribute: parsed and validated at the boundary, round-trips without loss.
type PlayerPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceType  string `json:"sourceType"`
	VideoPath   string `json:"videoPath,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
}

// Validate checks the payload schema. The URL field that does not match
// SourceType may be present (the resolver ignores it) but SourceType itself
// must be one of the known values.
func (p *PlayerPayload) Validate() error {
	switch p.SourceType {
	case SourceFile, SourceURL:
	default:
		return fmt.Errorf("invalid sourceType %q", p.SourceType)
	}
	if p.Title == "" {
		return fmt.Errorf("missing title")
	}
	return nil
}

// CandidateURL returns the playback URL selected by SourceType.
func (p *PlayerPayload) CandidateURL() string {
	if p.SourceType == SourceFile {
		return p.VideoPath
	}
	return p.VideoURL
}

// ParsePlayerPayload decodes and validates a serialized payload.
func ParsePlayerPayload(data []byte) (*PlayerPayload, error) {
	var p PlayerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Encode serializes the payload for embedding in a card.
func (p *PlayerPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// Payload builds the player payload for an upload.
func (u *CreatorUpload) Payload() PlayerPayload {
	return PlayerPayload{
		Title:       u.Title,
		Description: u.Description,
		SourceType:  u.SourceType,
		VideoPath:   u.VideoPath,
		VideoURL:    u.VideoURL,
	}
}
