package services

import (
	"database/sql"
	"fmt"

	"AniSong/models"
)

// CatalogService is read/write access to the animes and songs tables.
// It does not re-check uniqueness: submission-time validation in the
// request workflow owns that.
type CatalogService struct {
	db *sql.DB
}

func NewCatalogService(db *sql.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Animes lists every anime in insertion order.
func (s *CatalogService) Animes() ([]models.Anime, error) {
	rows, err := s.db.Query("SELECT id, name, img_url, created_at FROM animes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list animes: %w", err)
	}
	defer rows.Close()

	var animes []models.Anime
	for rows.Next() {
		var a models.Anime
		if err := rows.Scan(&a.ID, &a.Name, &a.ImgURL, &a.CreatedAt); err != nil {
			return nil, err
		}
		animes = append(animes, a)
	}
	return animes, rows.Err()
}

func (s *CatalogService) scanAnime(row *sql.Row) (*models.Anime, error) {
	var a models.Anime
	err := row.Scan(&a.ID, &a.Name, &a.ImgURL, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &a, nil
}

func (s *CatalogService) AnimeByID(id int64) (*models.Anime, error) {
	return s.scanAnime(s.db.QueryRow(
		"SELECT id, name, img_url, created_at FROM animes WHERE id = $1", id))
}

func (s *CatalogService) AnimeByName(name string) (*models.Anime, error) {
	return s.scanAnime(s.db.QueryRow(
		"SELECT id, name, img_url, created_at FROM animes WHERE name = $1", name))
}

// SongsForAnime returns the anime's songs, optionally narrowed to one
// relation category (opening, ending or ost).
func (s *CatalogService) SongsForAnime(animeID int64, filter string) ([]models.Song, error) {
	rows, err := s.db.Query(
		"SELECT id, title, interpreter, relation, ytb_url, spoty_url, anime_id, created_at FROM songs WHERE anime_id = $1 ORDER BY id",
		animeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var song models.Song
		err := rows.Scan(&song.ID, &song.Title, &song.Interpreter, &song.Relation,
			&song.YtbURL, &song.SpotyURL, &song.AnimeID, &song.CreatedAt)
		if err != nil {
			return nil, err
		}
		if filter != "" && filter != models.RelationAll && song.RelationCategory() != filter {
			continue
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (s *CatalogService) CreateAnime(name, imgURL string) (*models.Anime, error) {
	var id int64
	err := s.db.QueryRow(
		"INSERT INTO animes (name, img_url) VALUES ($1, $2) RETURNING id",
		name, imgURL,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create anime: %w", err)
	}
	return s.AnimeByID(id)
}

func (s *CatalogService) CreateSong(title, interpreter, relation, ytbURL, spotyURL string, animeID int64) (*models.Song, error) {
	var song models.Song
	err := s.db.QueryRow(
		`INSERT INTO songs (title, interpreter, relation, ytb_url, spoty_url, anime_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, title, interpreter, relation, ytb_url, spoty_url, anime_id, created_at`,
		title, interpreter, relation, ytbURL, spotyURL, animeID,
	).Scan(&song.ID, &song.Title, &song.Interpreter, &song.Relation,
		&song.YtbURL, &song.SpotyURL, &song.AnimeID, &song.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create song: %w", err)
	}
	return &song, nil
}
