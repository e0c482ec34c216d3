package services

import (
	"Streamsphere/database"
	"Streamsphere/models"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const creatorSubscriptionDuration = 30 * 24 * time.Hour

// NormalizeEmail lowercases and trims an email for use as the account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func AuthenticateUser(email, password string) (*models.User, error) {
	user, err := GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func RegisterUser(email, password, role string) (*models.User, error) {
	e := NormalizeEmail(email)

	if _, err := GetUserByEmail(e); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	if role != models.RoleCreator {
		role = models.RoleUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        e,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    time.Now().UnixMilli(),
	}

	// A creator whose email carries a paid order starts out subscribed for 30
	// days from payment.
	if role == models.RoleCreator {
		subscribed, until, err := creatorSubscription(e)
		if err != nil {
			return nil, err
		}
		user.CreatorSubscribed = subscribed
		user.CreatorSubscribedUntil = until
	}

	_, err = database.DB.Exec(
		`INSERT INTO users (email, password_hash, role, creator_subscribed, creator_subscribed_until, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.Email, user.PasswordHash, user.Role, user.CreatorSubscribed, nullableInt64(user.CreatorSubscribedUntil), user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	var until sql.NullInt64
	err := database.DB.QueryRow(
		`SELECT email, password_hash, role, creator_subscribed, creator_subscribed_until, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatorSubscribed,
		&until,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	user.CreatorSubscribedUntil = until.Int64
	return &user, nil
}

// UpdatePassword replaces a user's password hash.
func UpdatePassword(email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	res, err := database.DB.Exec(
		"UPDATE users SET password_hash = $1 WHERE email = $2",
		string(hashedPassword), NormalizeEmail(email),
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func creatorSubscription(email string) (bool, int64, error) {
	var paidAt sql.NullInt64
	err := database.DB.QueryRow(
		"SELECT paid_at FROM orders WHERE email = $1 AND paid = TRUE LIMIT 1",
		email,
	).Scan(&paidAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("database error: %w", err)
	}

	start := paidAt.Int64
	if start == 0 {
		start = time.Now().UnixMilli()
	}
	return true, start + creatorSubscriptionDuration.Milliseconds(), nil
}

func nullableInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}
