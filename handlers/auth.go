package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"Streamsphere/metrics"
	"Streamsphere/services"
	"Streamsphere/telemetry"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := services.RegisterUser(req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			metrics.AuthEvents.WithLabelValues("register", "conflict").Inc()
			writeError(w, http.StatusConflict, "User exists")
			return
		}
		slog.Error("Registration failed", "email", req.Email, "error", err)
		telemetry.CaptureError(err, map[string]string{"operation": "register"})
		metrics.AuthEvents.WithLabelValues("register", "error").Inc()
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	slog.Info("User registered", "email", user.Email, "role", user.Role)
	metrics.AuthEvents.WithLabelValues("register", "ok").Inc()

	// Log in right away, like the login flow does.
	if err := services.SetupUserSession(w, r, user); err != nil {
		slog.Error("Failed to setup session", "email", user.Email, "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user": userJSON(user)})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		slog.Warn("Login failed", "email", req.Email, "error", err)
		metrics.AuthEvents.WithLabelValues("login", "denied").Inc()
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := services.SetupUserSession(w, r, user); err != nil {
		slog.Error("Failed to setup session", "email", user.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("User authenticated", "email", user.Email)
	metrics.AuthEvents.WithLabelValues("login", "ok").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user": userJSON(user)})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	services.ClearSession(w, r)
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}
