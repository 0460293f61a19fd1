package handlers

import (
	"log/slog"
	"net/http"

	"AniSong/models"
	"AniSong/services"
)

type adminRequestsData struct {
	User          *models.User
	SongRequests  []models.SongRequest
	AnimeRequests []models.AnimeRequest
}

// AdminRequests lists every request for review, newest first.
func (h *Handler) AdminRequests(w http.ResponseWriter, r *http.Request) {
	user := h.requireAdmin(w, r)
	if user == nil {
		return
	}

	songRequests, err := h.Requests.SongRequests()
	if err != nil {
		slog.Error("failed to list song requests", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	animeRequests, err := h.Requests.AnimeRequests()
	if err != nil {
		slog.Error("failed to list anime requests", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, "admin-requests", adminRequestsData{
		User:          user,
		SongRequests:  songRequests,
		AnimeRequests: animeRequests,
	})
}

func parseDecision(r *http.Request) (services.Decision, bool) {
	switch r.FormValue("decision") {
	case "accept":
		return services.DecisionAccept, true
	case "reject":
		return services.DecisionReject, true
	}
	return "", false
}

type adminSongRequestData struct {
	User    *models.User
	Request *models.SongRequest
}

// AdminSongRequest shows a song request and applies the accept/reject
// decision posted from its form.
func (h *Handler) AdminSongRequest(w http.ResponseWriter, r *http.Request) {
	user := h.requireAdmin(w, r)
	if user == nil {
		return
	}

	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	req, err := h.Requests.SongRequestByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, "admin-request-song", adminSongRequestData{User: user, Request: req})
		return
	}

	decision, ok := parseDecision(r)
	if !ok {
		http.Error(w, "Invalid decision", http.StatusBadRequest)
		return
	}

	if err := h.Requests.ResolveSong(id, decision, user); err != nil {
		slog.Error("failed to resolve song request", "request_id", id, "decision", decision, "error", err)
	} else {
		slog.Info("song request resolved", "request_id", id, "decision", decision, "admin", user.Username)
	}

	http.Redirect(w, r, "/administration/request", http.StatusSeeOther)
}

type adminAnimeRequestData struct {
	User    *models.User
	Request *models.AnimeRequest
}

func (h *Handler) AdminAnimeRequest(w http.ResponseWriter, r *http.Request) {
	user := h.requireAdmin(w, r)
	if user == nil {
		return
	}

	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	req, err := h.Requests.AnimeRequestByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, "admin-request-anime", adminAnimeRequestData{User: user, Request: req})
		return
	}

	decision, ok := parseDecision(r)
	if !ok {
		http.Error(w, "Invalid decision", http.StatusBadRequest)
		return
	}

	if err := h.Requests.ResolveAnime(id, decision, user); err != nil {
		slog.Error("failed to resolve anime request", "request_id", id, "decision", decision, "error", err)
	} else {
		slog.Info("anime request resolved", "request_id", id, "decision", decision, "admin", user.Username)
	}

	http.Redirect(w, r, "/administration/request", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteSongRequest(w http.ResponseWriter, r *http.Request) {
	user := h.requireAdmin(w, r)
	if user == nil {
		return
	}

	id, err := idParam(r)
	if err == nil {
		if err := h.Requests.DeleteSongRequest(id, user); err != nil {
			slog.Warn("song request delete failed", "request_id", id, "error", err)
		}
	}

	http.Redirect(w, r, "/administration/request", http.StatusSeeOther)
}

func (h *Handler) AdminDeleteAnimeRequest(w http.ResponseWriter, r *http.Request) {
	user := h.requireAdmin(w, r)
	if user == nil {
		return
	}

	id, err := idParam(r)
	if err == nil {
		if err := h.Requests.DeleteAnimeRequest(id, user); err != nil {
			slog.Warn("anime request delete failed", "request_id", id, "error", err)
		}
	}

	http.Redirect(w, r, "/administration/request", http.StatusSeeOther)
}
