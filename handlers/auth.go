package handlers

import (
	"log/slog"
	"net/http"

	"AniSong/services"
)

type authPageData struct {
	User   any
	Form   map[string]string
	Errors *services.ValidationError
	Failed bool
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "login", authPageData{})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	remember := r.FormValue("remember") == "on"

	user, err := h.Identity.Authenticate(username, password)
	if err != nil {
		slog.Warn("login failed", "username", username)
		h.render(w, "login", authPageData{
			Form:   map[string]string{"username": username},
			Failed: true,
		})
		return
	}

	if err := h.Sessions.Create(w, r, user, remember); err != nil {
		slog.Error("failed to create session", "username", username, "error", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	slog.Info("user authenticated", "username", username, "user_id", user.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "register", authPageData{})
		return
	}

	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirmation := r.FormValue("password_confirmation")

	user, err := h.Identity.Register(username, email, password, confirmation)
	if err != nil {
		if verr := validationErrors(err); verr != nil {
			h.render(w, "register", authPageData{
				Form:   map[string]string{"username": username, "email": email},
				Errors: verr,
			})
			return
		}
		slog.Error("registration failed", "username", username, "error", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	slog.Info("user registered", "username", username, "user_id", user.ID)

	// Automatically log in after registration
	if err := h.Sessions.Create(w, r, user, false); err != nil {
		slog.Error("failed to create session", "username", username, "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
