package services

import (
	"Streamsphere/database"
	"Streamsphere/models"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	ErrCodeExpired      = errors.New("reset code expired")
	ErrCodeMismatch     = errors.New("invalid reset code")
	ErrCodeNotFound     = errors.New("no reset code issued")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
)

const (
	resetCodeTTL      = 10 * time.Minute
	minPasswordLength = 4
)

// IssueResetCode creates a 6-digit password-reset code for a known account,
// replacing any previous one. The code expires after 10 minutes.
func IssueResetCode(email string, now time.Time) (*models.ResetCode, error) {
	e := NormalizeEmail(email)
	if _, err := GetUserByEmail(e); err != nil {
		return nil, err
	}

	rc := &models.ResetCode{
		Email:     e,
		Code:      fmt.Sprintf("%06d", rand.IntN(900000)+100000),
		ExpiresAt: now.Add(resetCodeTTL).UnixMilli(),
	}

	_, err := database.DB.Exec(
		`INSERT INTO password_resets (email, code, expires_at) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at`,
		rc.Email, rc.Code, rc.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to store reset code: %w", err)
	}
	return rc, nil
}

// CheckResetCode validates a submitted code against the stored record.
func CheckResetCode(stored *models.ResetCode, code string, now time.Time) error {
	if stored == nil {
		return ErrCodeNotFound
	}
	if now.UnixMilli() > stored.ExpiresAt {
		return ErrCodeExpired
	}
	if code != stored.Code {
		return ErrCodeMismatch
	}
	return nil
}

// ValidateNewPassword enforces the minimum password length.
func ValidateNewPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ResetPassword verifies the OTP and replaces the account password. The code
// is consumed on success and on expiry.
func ResetPassword(email, code, password string, now time.Time) error {
	e := NormalizeEmail(email)

	stored, err := loadResetCode(e)
	if err != nil {
		return err
	}

	if err := CheckResetCode(stored, code, now); err != nil {
		if errors.Is(err, ErrCodeExpired) {
			clearResetCode(e)
		}
		return err
	}

	if err := ValidateNewPassword(password); err != nil {
		return err
	}

	if err := UpdatePassword(e, password); err != nil {
		return err
	}

	clearResetCode(e)
	return nil
}

func loadResetCode(email string) (*models.ResetCode, error) {
	var rc models.ResetCode
	err := database.DB.QueryRow(
		"SELECT email, code, expires_at FROM password_resets WHERE email = $1",
		email,
	).Scan(&rc.Email, &rc.Code, &rc.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &rc, nil
}

func clearResetCode(email string) {
	database.DB.Exec("DELETE FROM password_resets WHERE email = $1", email)
}
