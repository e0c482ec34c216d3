package middleware

import (
	"log/slog"
	"net/http"

	"Streamsphere/services"
)

// redirectToLogin logs the reason and redirects to the login boundary.
func redirectToLogin(w http.ResponseWriter, r *http.Request, reason string) {
	slog.Info("Auth redirect", "reason", reason, "path", r.URL.Path)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// RequireAuth gates a route on an authenticated session. Unauthenticated
// requests are sent to the login boundary and no downstream state is created.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := services.CurrentSession(r); err != nil {
			redirectToLogin(w, r, "no session")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireCreator gates a route on an authenticated creator-role session.
func RequireCreator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := services.CurrentSession(r)
		if err != nil {
			redirectToLogin(w, r, "no session")
			return
		}
		if !session.IsCreator() {
			http.Error(w, "Not a creator", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
