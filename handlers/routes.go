package handlers

import (
	"AniSong/middleware"

	"github.com/go-chi/chi/v5"
)

// Routes mounts every page on a chi router.
func (h *Handler) Routes(auth *middleware.Auth) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logging)

	// Public routes
	r.HandleFunc("/login", h.Login)
	r.HandleFunc("/register", h.Register)
	r.Get("/logout", h.Logout)
	r.Get("/", h.Home)
	r.Get("/anime/{id}", h.AnimePage("all"))
	r.Get("/anime/{id}/opening", h.AnimePage("opening"))
	r.Get("/anime/{id}/ending", h.AnimePage("ending"))
	r.Get("/anime/{id}/ost", h.AnimePage("ost"))

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.HandleFunc("/request/song", h.RequestSong)
		r.HandleFunc("/request/anime", h.RequestAnime)
		r.Get("/profile/request", h.ProfileRequests)
		r.Post("/profile/request/song/{id}/delete", h.DeleteOwnSongRequest)
		r.Post("/profile/request/anime/{id}/delete", h.DeleteOwnAnimeRequest)

		// Administration (role checked per handler, non-admins go home)
		r.Get("/administration/request", h.AdminRequests)
		r.HandleFunc("/administration/request/song/{id}", h.AdminSongRequest)
		r.HandleFunc("/administration/request/anime/{id}", h.AdminAnimeRequest)
		r.Post("/administration/request/song/{id}/delete", h.AdminDeleteSongRequest)
		r.Post("/administration/request/anime/{id}/delete", h.AdminDeleteAnimeRequest)
	})

	return r
}
