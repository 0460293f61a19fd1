package services

import (
	"net/http"

	"AniSong/config"
	"AniSong/models"

	"github.com/gorilla/sessions"
)

const sessionName = "anisong-session"

// SessionManager wraps the cookie store so handlers get an injected
// handle instead of a package global.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // session cookie unless "remember me" extends it
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store}
}

// Create establishes an authenticated session for the user. With
// remember set, the cookie survives the browser for 30 days.
func (m *SessionManager) Create(w http.ResponseWriter, r *http.Request, user *models.User, remember bool) error {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie decodes with an error but still
		// yields a fresh session; overwrite it.
		session, _ = m.store.New(r, sessionName)
	}

	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username
	if remember {
		session.Options.MaxAge = 86400 * 30
	}

	return session.Save(r, w)
}

// CurrentUserID resolves the session cookie to a user id. The second
// return is false for anonymous visitors.
func (m *SessionManager) CurrentUserID(r *http.Request) (int64, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}

	raw, ok := session.Values["user_id"]
	if !ok {
		return 0, false
	}

	switch v := raw.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// Destroy invalidates the session.
func (m *SessionManager) Destroy(w http.ResponseWriter, r *http.Request) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	session.Save(r, w)
}
