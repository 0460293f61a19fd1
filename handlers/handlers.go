package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"AniSong/models"
	"AniSong/services"
	"AniSong/templates"

	"github.com/go-chi/chi/v5"
)

// Handler bundles the services every page handler needs, injected once
// at startup instead of reached through package globals.
type Handler struct {
	Sessions *services.SessionManager
	Identity *services.IdentityService
	Catalog  *services.CatalogService
	Requests *services.RequestService

	tmpl map[string]*template.Template
}

var pages = []string{
	"login",
	"register",
	"index",
	"anime",
	"request-song",
	"request-anime",
	"profile-requests",
	"admin-requests",
	"admin-request-song",
	"admin-request-anime",
}

func New(sessions *services.SessionManager, identity *services.IdentityService,
	catalog *services.CatalogService, requests *services.RequestService) (*Handler, error) {

	h := &Handler{
		Sessions: sessions,
		Identity: identity,
		Catalog:  catalog,
		Requests: requests,
		tmpl:     make(map[string]*template.Template),
	}

	funcMap := template.FuncMap{
		"hasPrefix": strings.HasPrefix,
		"title": func(s string) string {
			if len(s) == 0 {
				return s
			}
			return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
		},
	}

	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcMap).ParseFS(
			templates.FS,
			"layouts/base.html",
			"components/navigation.html",
			"pages/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		h.tmpl[page] = tmpl
	}

	return h, nil
}

func (h *Handler) render(w http.ResponseWriter, page string, data any) {
	if err := h.tmpl[page].ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CurrentUser resolves the session to a user. Anonymous visitors get
// (nil, nil); pages that allow browsing without an account rely on that.
func (h *Handler) CurrentUser(r *http.Request) (*models.User, error) {
	userID, ok := h.Sessions.CurrentUserID(r)
	if !ok {
		return nil, nil
	}
	user, err := h.Identity.UserByID(userID)
	if err != nil {
		if err == services.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// requireUser is for routes behind RequireAuth; a missing session here
// means the cookie expired mid-flight, so bounce to login.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) *models.User {
	user, err := h.CurrentUser(r)
	if err != nil || user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil
	}
	return user
}

// requireAdmin redirects non-administrators to the home page, matching
// the site's behavior of never surfacing a 403.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) *models.User {
	user := h.requireUser(w, r)
	if user == nil {
		return nil
	}
	if !user.IsAdmin() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	return user
}

// idParam parses the {id} chi route parameter.
func idParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, fmt.Errorf("missing id parameter")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}

// validationErrors extracts inline field messages from a service error,
// or nil when the error is not a validation failure.
func validationErrors(err error) *services.ValidationError {
	if verr, ok := services.AsValidation(err); ok {
		return verr
	}
	return nil
}
