package handlers

import (
	"log/slog"
	"net/http"

	"AniSong/models"
	"AniSong/services"
)

type requestSongData struct {
	User   *models.User
	Animes []models.Anime
	Form   map[string]string
	Errors *services.ValidationError
}

func (h *Handler) RequestSong(w http.ResponseWriter, r *http.Request) {
	user := h.requireUser(w, r)
	if user == nil {
		return
	}

	animes, err := h.Catalog.Animes()
	if err != nil {
		slog.Error("failed to list animes", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, "request-song", requestSongData{User: user, Animes: animes})
		return
	}

	input := services.SongRequestInput{
		Title:       r.FormValue("title"),
		Interpreter: r.FormValue("interpreter"),
		Relation:    r.FormValue("relation"),
		YtbURL:      r.FormValue("ytb_url"),
		SpotyURL:    r.FormValue("spoty_url"),
	}
	animeName := r.FormValue("anime")

	req, err := h.Requests.SubmitSong(input, animeName, user)
	if err != nil {
		if verr := validationErrors(err); verr != nil {
			h.render(w, "request-song", requestSongData{
				User:   user,
				Animes: animes,
				Form: map[string]string{
					"anime":       animeName,
					"title":       input.Title,
					"interpreter": input.Interpreter,
					"relation":    input.Relation,
					"ytb_url":     input.YtbURL,
					"spoty_url":   input.SpotyURL,
				},
				Errors: verr,
			})
			return
		}
		slog.Error("failed to submit song request", "user_id", user.ID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	slog.Info("song request submitted", "request_id", req.ID, "user_id", user.ID, "title", req.Title)
	http.Redirect(w, r, "/profile/request", http.StatusSeeOther)
}

type requestAnimeData struct {
	User   *models.User
	Form   map[string]string
	Errors *services.ValidationError
}

func (h *Handler) RequestAnime(w http.ResponseWriter, r *http.Request) {
	user := h.requireUser(w, r)
	if user == nil {
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, "request-anime", requestAnimeData{User: user})
		return
	}

	name := r.FormValue("name")
	imgURL := r.FormValue("img_url")

	req, err := h.Requests.SubmitAnime(name, imgURL, user)
	if err != nil {
		if verr := validationErrors(err); verr != nil {
			h.render(w, "request-anime", requestAnimeData{
				User:   user,
				Form:   map[string]string{"name": name, "img_url": imgURL},
				Errors: verr,
			})
			return
		}
		slog.Error("failed to submit anime request", "user_id", user.ID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	slog.Info("anime request submitted", "request_id", req.ID, "user_id", user.ID, "name", req.Name)
	http.Redirect(w, r, "/profile/request", http.StatusSeeOther)
}

type profileRequestsData struct {
	User          *models.User
	SongRequests  []models.SongRequest
	AnimeRequests []models.AnimeRequest
}

func (h *Handler) ProfileRequests(w http.ResponseWriter, r *http.Request) {
	user := h.requireUser(w, r)
	if user == nil {
		return
	}

	songRequests, err := h.Requests.SongRequestsByUser(user.ID)
	if err != nil {
		slog.Error("failed to list song requests", "user_id", user.ID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	animeRequests, err := h.Requests.AnimeRequestsByUser(user.ID)
	if err != nil {
		slog.Error("failed to list anime requests", "user_id", user.ID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, "profile-requests", profileRequestsData{
		User:          user,
		SongRequests:  songRequests,
		AnimeRequests: animeRequests,
	})
}

// DeleteOwnSongRequest removes one of the user's own song requests.
// Attempts on someone else's request leave the row untouched.
func (h *Handler) DeleteOwnSongRequest(w http.ResponseWriter, r *http.Request) {
	user := h.requireUser(w, r)
	if user == nil {
		return
	}

	id, err := idParam(r)
	if err == nil {
		if err := h.Requests.DeleteSongRequest(id, user); err != nil {
			slog.Warn("song request delete refused", "request_id", id, "user_id", user.ID, "error", err)
		}
	}

	http.Redirect(w, r, "/profile/request", http.StatusSeeOther)
}

func (h *Handler) DeleteOwnAnimeRequest(w http.ResponseWriter, r *http.Request) {
	user := h.requireUser(w, r)
	if user == nil {
		return
	}

	id, err := idParam(r)
	if err == nil {
		if err := h.Requests.DeleteAnimeRequest(id, user); err != nil {
			slog.Warn("anime request delete refused", "request_id", id, "user_id", user.ID, "error", err)
		}
	}

	http.Redirect(w, r, "/profile/request", http.StatusSeeOther)
}
