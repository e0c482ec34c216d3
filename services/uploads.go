package services

import (
	"Streamsphere/database"
	"Streamsphere/models"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewUploadID returns a fresh creator-upload identifier.
func NewUploadID() string {
	return "mv_" + uuid.NewString()
}

// CreateUpload validates the record shape and inserts it. SourceType is
// derived from which URL field is populated.
func CreateUpload(u *models.CreatorUpload) error {
	if u.Title == "" {
		return fmt.Errorf("missing title")
	}
	if u.ID == "" {
		u.ID = NewUploadID()
	}
	u.Category = models.NormalizeCategory(u.Category)
	if u.VideoPath != "" {
		u.SourceType = models.SourceFile
		u.VideoURL = ""
	} else {
		u.SourceType = models.SourceURL
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().UnixMilli()
	}

	_, err := database.DB.Exec(
		`INSERT INTO movies (id, title, description, category, poster, source_type, video_path, video_url, creator_email, created_at, approved)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Title, u.Description, u.Category, u.Poster, u.SourceType, u.VideoPath, u.VideoURL, u.CreatorEmail, u.CreatedAt, u.Approved,
	)
	if err != nil {
		return fmt.Errorf("failed to insert upload: %w", err)
	}
	return nil
}

// ListPublicUploads returns approved creator uploads, newest first.
func ListPublicUploads() ([]models.CreatorUpload, error) {
	rows, err := database.DB.Query(
		`SELECT id, title, COALESCE(description, ''), category, COALESCE(poster, ''), source_type,
		        COALESCE(video_path, ''), COALESCE(video_url, ''), creator_email, created_at, approved
		 FROM movies WHERE approved = TRUE ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query uploads: %w", err)
	}
	defer rows.Close()

	var uploads []models.CreatorUpload
	for rows.Next() {
		var u models.CreatorUpload
		if err := rows.Scan(
			&u.ID, &u.Title, &u.Description, &u.Category, &u.Poster,
			&u.SourceType, &u.VideoPath, &u.VideoURL, &u.CreatorEmail,
			&u.CreatedAt, &u.Approved,
		); err != nil {
			return nil, fmt.Errorf("failed to scan upload: %w", err)
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// FilterUploadsByCategory keeps uploads of one category, preserving order.
func FilterUploadsByCategory(uploads []models.CreatorUpload, category string) []models.CreatorUpload {
	var out []models.CreatorUpload
	for _, u := range uploads {
		if u.Category == category {
			out = append(out, u)
		}
	}
	return out
}
