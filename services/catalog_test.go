package services

import (
	"errors"
	"testing"

	"AniSong/models"
)

func TestCreateAndListAnimes(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	catalog := NewCatalogService(db)

	first, err := catalog.CreateAnime("Haikyuu - Saison 4", "https://example.com/haikyuu.jpg")
	if err != nil {
		t.Fatalf("create anime: %v", err)
	}
	if _, err := catalog.CreateAnime("Naruto", "https://example.com/naruto.jpg"); err != nil {
		t.Fatalf("create anime: %v", err)
	}

	animes, err := catalog.Animes()
	if err != nil {
		t.Fatalf("list animes: %v", err)
	}
	if len(animes) != 2 {
		t.Fatalf("len(animes) = %d, want 2", len(animes))
	}
	// Insertion order
	if animes[0].Name != "Haikyuu - Saison 4" || animes[1].Name != "Naruto" {
		t.Fatalf("unexpected order: %q, %q", animes[0].Name, animes[1].Name)
	}

	got, err := catalog.AnimeByName("Haikyuu - Saison 4")
	if err != nil {
		t.Fatalf("anime by name: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("id = %d, want %d", got.ID, first.ID)
	}
	if got.ImgURL != "https://example.com/haikyuu.jpg" {
		t.Fatalf("img_url = %q", got.ImgURL)
	}

	if _, err := catalog.AnimeByName("Bleach"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown name error = %v, want %v", err, ErrNotFound)
	}
	if _, err := catalog.AnimeByID(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id error = %v, want %v", err, ErrNotFound)
	}
}

func TestSongsForAnimeFilters(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	catalog := NewCatalogService(db)

	anime, err := catalog.CreateAnime("Haikyuu - Saison 4", "")
	if err != nil {
		t.Fatalf("create anime: %v", err)
	}

	for _, s := range []struct{ title, relation string }{
		{"Fly High!!", "OP2"},
		{"Hikari Are", "op1"}, // tag casing should not matter
		{"Climber", "ED1"},
		{"Battle Theme", "OST"},
	} {
		if _, err := catalog.CreateSong(s.title, "BURNOUT SYNDROMES", s.relation, "https://ytb", "https://spoty", anime.ID); err != nil {
			t.Fatalf("create song %s: %v", s.title, err)
		}
	}

	cases := []struct {
		filter string
		want   int
	}{
		{models.RelationAll, 4},
		{models.RelationOpening, 2},
		{models.RelationEnding, 1},
		{models.RelationOST, 1},
	}
	for _, tc := range cases {
		songs, err := catalog.SongsForAnime(anime.ID, tc.filter)
		if err != nil {
			t.Fatalf("songs filter %s: %v", tc.filter, err)
		}
		if len(songs) != tc.want {
			t.Fatalf("filter %s: len = %d, want %d", tc.filter, len(songs), tc.want)
		}
	}

	songs, err := catalog.SongsForAnime(anime.ID, models.RelationOpening)
	if err != nil {
		t.Fatalf("songs: %v", err)
	}
	if songs[0].Title != "Fly High!!" {
		t.Fatalf("first opening = %q, want %q", songs[0].Title, "Fly High!!")
	}
}

func TestSongsForOtherAnimeExcluded(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	catalog := NewCatalogService(db)

	haikyuu, _ := catalog.CreateAnime("Haikyuu", "")
	naruto, _ := catalog.CreateAnime("Naruto", "")
	if _, err := catalog.CreateSong("Fly High!!", "BURNOUT SYNDROMES", "OP2", "y", "s", haikyuu.ID); err != nil {
		t.Fatalf("create song: %v", err)
	}

	songs, err := catalog.SongsForAnime(naruto.ID, models.RelationAll)
	if err != nil {
		t.Fatalf("songs: %v", err)
	}
	if len(songs) != 0 {
		t.Fatalf("len = %d, want 0", len(songs))
	}
}
