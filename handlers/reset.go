package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"Streamsphere/services"
)

type resetRequestBody struct {
	Email string `json:"email"`
}

type resetConfirmBody struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// RequestResetHandler issues a password-reset OTP for a known account.
func RequestResetHandler(w http.ResponseWriter, r *http.Request) {
	var req resetRequestBody
	if err := decodeJSON(r, &req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Missing email")
		return
	}

	rc, err := services.IssueResetCode(req.Email, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "No account found for this email.")
			return
		}
		slog.Error("Failed to issue reset code", "email", req.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to issue reset code")
		return
	}

	resp := map[string]interface{}{"ok": true}
	// There is no mail delivery; outside production the code is returned in
	// the response, matching the original demo flow.
	if cfg.Environment != "production" {
		resp["demoOtp"] = rc.Code
	}
	writeJSON(w, http.StatusOK, resp)
}

// ConfirmResetHandler verifies the OTP and sets the new password.
func ConfirmResetHandler(w http.ResponseWriter, r *http.Request) {
	var req resetConfirmBody
	if err := decodeJSON(r, &req); err != nil || req.Email == "" || req.OTP == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	err := services.ResetPassword(req.Email, req.OTP, req.Password, time.Now())
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
	case errors.Is(err, services.ErrCodeExpired), errors.Is(err, services.ErrCodeNotFound):
		writeError(w, http.StatusBadRequest, "OTP expired or not generated. Please request a new OTP.")
	case errors.Is(err, services.ErrCodeMismatch):
		writeError(w, http.StatusBadRequest, "Invalid OTP. Please check and try again.")
	case errors.Is(err, services.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, "Password must be at least 4 characters.")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "Failed to reset password for this account.")
	default:
		slog.Error("Password reset failed", "email", req.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to reset password")
	}
}
