package middleware

import (
	"log/slog"
	"net/http"

	"AniSong/services"
)

// Auth gates routes behind an authenticated session.
type Auth struct {
	Sessions *services.SessionManager
	Identity *services.IdentityService
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, reason string) {
	slog.Debug("auth redirect", "reason", reason, "path", r.URL.Path)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := a.Sessions.CurrentUserID(r)
		if !ok {
			redirectToLogin(w, r, "user not authenticated")
			return
		}

		// Verify user still exists
		if _, err := a.Identity.UserByID(userID); err != nil {
			redirectToLogin(w, r, "user not found in database")
			return
		}

		next.ServeHTTP(w, r)
	})
}
