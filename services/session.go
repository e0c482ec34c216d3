package services

import (
	"Streamsphere/config"
	"Streamsphere/models"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "streamsphere-session"

var store *sessions.CookieStore

func InitSessionStore(cfg *config.Config) {
	store = sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func GetSession(r *http.Request) (*sessions.Session, error) {
	return store.Get(r, sessionName)
}

func SaveSession(w http.ResponseWriter, r *http.Request, session *sessions.Session) error {
	return session.Save(r, w)
}

// SetupUserSession writes the user's identity into a fresh session cookie.
func SetupUserSession(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, err := GetSession(r)
	if err != nil {
		// A stale or tampered cookie still yields a usable new session.
		session, _ = store.New(r, sessionName)
	}
	session.Values["email"] = user.Email
	session.Values["role"] = user.Role
	session.Values["creator_subscribed"] = user.CreatorSubscribed
	session.Values["creator_subscribed_until"] = user.CreatorSubscribedUntil
	return SaveSession(w, r, session)
}

// CurrentSession loads the explicit session object for a request, or an error
// when the request is unauthenticated.
func CurrentSession(r *http.Request) (*models.Session, error) {
	session, err := GetSession(r)
	if err != nil {
		return nil, fmt.Errorf("no session: %w", err)
	}
	email, ok := session.Values["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("not authenticated")
	}
	role, _ := session.Values["role"].(string)
	subscribed, _ := session.Values["creator_subscribed"].(bool)
	until := toInt64(session.Values["creator_subscribed_until"])
	return &models.Session{
		Email:                  email,
		Role:                   role,
		CreatorSubscribed:      subscribed,
		CreatorSubscribedUntil: until,
	}, nil
}

// ClearSession destroys the session cookie.
func ClearSession(w http.ResponseWriter, r *http.Request) {
	session, err := GetSession(r)
	if err != nil {
		return
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	SaveSession(w, r, session)
}

func toInt64(v interface{}) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	default:
		return 0
	}
}
