package services

import (
	"errors"
	"testing"
	"time"

	"Streamsphere/models"
)

func TestCheckResetCode(t *testing.T) {
	now := time.Now()
	stored := &models.ResetCode{
		Email:     "user@example.com",
		Code:      "123456",
		ExpiresAt: now.Add(10 * time.Minute).UnixMilli(),
	}

	tests := []struct {
		name    string
		stored  *models.ResetCode
		code    string
		at      time.Time
		wantErr error
	}{
		{"valid code", stored, "123456", now, nil},
		{"wrong code", stored, "654321", now, ErrCodeMismatch},
		{"expired", stored, "123456", now.Add(11 * time.Minute), ErrCodeExpired},
		{"no code issued", nil, "123456", now, ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckResetCode(tt.stored, tt.code, tt.at)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckResetCodeExpiryBeatsMismatch(t *testing.T) {
	stored := &models.ResetCode{
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute).UnixMilli(),
	}
	// An expired record reports expiry even for a wrong code.
	if err := CheckResetCode(stored, "000000", time.Now()); !errors.Is(err, ErrCodeExpired) {
		t.Errorf("got %v, want ErrCodeExpired", err)
	}
}

func TestValidateNewPassword(t *testing.T) {
	if err := ValidateNewPassword("abc"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("3-char password should be rejected, got %v", err)
	}
	if err := ValidateNewPassword("abcd"); err != nil {
		t.Errorf("4-char password should pass, got %v", err)
	}
}
