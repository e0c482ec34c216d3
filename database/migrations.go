package database

import (
	"fmt"
)

func RunMigrations() error {
	usersSQL := `
	CREATE TABLE IF NOT EXISTS users (
		email TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		creator_subscribed BOOLEAN DEFAULT FALSE,
		creator_subscribed_until BIGINT,
		created_at BIGINT NOT NULL
	);
	`
	if _, err := DB.Exec(usersSQL); err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	moviesSQL := `
	CREATE TABLE IF NOT EXISTS movies (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		poster TEXT,
		source_type TEXT NOT NULL,
		video_path TEXT,
		video_url TEXT,
		creator_email TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		approved BOOLEAN DEFAULT TRUE
	);

	CREATE INDEX IF NOT EXISTS idx_movies_creator_email ON movies (creator_email);
	CREATE INDEX IF NOT EXISTS idx_movies_created_at ON movies (created_at);
	`
	if _, err := DB.Exec(moviesSQL); err != nil {
		return fmt.Errorf("failed to run movies migration: %w", err)
	}

	ordersSQL := `
	CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL,
		paid BOOLEAN DEFAULT FALSE,
		paid_at BIGINT
	);

	CREATE INDEX IF NOT EXISTS idx_orders_email ON orders (email);
	`
	if _, err := DB.Exec(ordersSQL); err != nil {
		return fmt.Errorf("failed to run orders migration: %w", err)
	}

	resetsSQL := `
	CREATE TABLE IF NOT EXISTS password_resets (
		email TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		expires_at BIGINT NOT NULL
	);
	`
	if _, err := DB.Exec(resetsSQL); err != nil {
		return fmt.Errorf("failed to run password_resets migration: %w", err)
	}

	return nil
}
