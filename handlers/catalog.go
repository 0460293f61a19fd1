package handlers

import (
	"log/slog"
	"net/http"

	"AniSong/models"
)

type homeData struct {
	User   *models.User
	Title  string
	Animes []models.Anime
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	user, _ := h.CurrentUser(r)

	animes, err := h.Catalog.Animes()
	if err != nil {
		slog.Error("failed to list animes", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, "index", homeData{
		User:   user,
		Title:  "My Anime Songs",
		Animes: animes,
	})
}

type animeData struct {
	User    *models.User
	Anime   *models.Anime
	Songs   []models.Song
	Display string
}

// AnimePage renders an anime's songs, narrowed by the filter baked into
// the route (all, opening, ending, ost).
func (h *Handler) AnimePage(filter string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := h.CurrentUser(r)

		id, err := idParam(r)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		anime, err := h.Catalog.AnimeByID(id)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		songs, err := h.Catalog.SongsForAnime(id, filter)
		if err != nil {
			slog.Error("failed to list songs", "anime_id", id, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		h.render(w, "anime", animeData{
			User:    user,
			Anime:   anime,
			Songs:   songs,
			Display: filter,
		})
	}
}
