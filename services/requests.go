package services

import (
	"database/sql"
	"fmt"

	"AniSong/models"
)

// Decision is an administrator's verdict on a pending request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// SongRequestInput carries the proposed song fields of a submission.
type SongRequestInput struct {
	Title       string
	Interpreter string
	Relation    string
	YtbURL      string
	SpotyURL    string
}

// RequestService is the approval workflow: users submit song and anime
// requests, administrators accept or reject them, acceptance
// materializes the proposal into the catalog. The catalog is never
// mutated except through an explicit administrator decision, every
// mutation is individually authorized, and a request's status moves
// one way only: pending to accepted or rejected.
type RequestService struct {
	db      *sql.DB
	catalog *CatalogService
}

func NewRequestService(db *sql.DB, catalog *CatalogService) *RequestService {
	return &RequestService{db: db, catalog: catalog}
}

// SubmitSong validates and stores a song proposal with status pending.
// The anime must already exist in the catalog at submission time.
func (s *RequestService) SubmitSong(input SongRequestInput, animeName string, user *models.User) (*models.SongRequest, error) {
	err := validate(
		required("anime", animeName),
		required("title", input.Title),
		maxLength("title", input.Title, 60),
		required("interpreter", input.Interpreter),
		maxLength("interpreter", input.Interpreter, 60),
		required("relation", input.Relation),
		maxLength("relation", input.Relation, 5),
		required("ytb_url", input.YtbURL),
		maxLength("ytb_url", input.YtbURL, 120),
		required("spoty_url", input.SpotyURL),
		maxLength("spoty_url", input.SpotyURL, 120),
	)
	if err != nil {
		return nil, err
	}

	anime, err := s.catalog.AnimeByName(animeName)
	if err != nil {
		if err == ErrNotFound {
			return nil, &ValidationError{Fields: []FieldError{
				{Field: "anime", Message: "L'anime ne figure pas dans la base de données"},
			}}
		}
		return nil, err
	}

	var id int64
	err = s.db.QueryRow(
		`INSERT INTO song_requests (title, interpreter, relation, ytb_url, spoty_url, anime_id, user_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
		 RETURNING id`,
		input.Title, input.Interpreter, input.Relation, input.YtbURL, input.SpotyURL, anime.ID, user.ID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create song request: %w", err)
	}

	return s.SongRequestByID(id)
}

// SubmitAnime validates and stores an anime proposal with status
// pending. A proposal colliding with an existing catalog entry is
// rejected outright.
func (s *RequestService) SubmitAnime(name, imgURL string, user *models.User) (*models.AnimeRequest, error) {
	err := validate(
		required("name", name),
		maxLength("name", name, 80),
		required("img_url", imgURL),
		maxLength("img_url", imgURL, 120),
		s.animeNotInCatalog(name),
	)
	if err != nil {
		return nil, err
	}

	var id int64
	err = s.db.QueryRow(
		`INSERT INTO anime_requests (name, img_url, user_id, status)
		 VALUES ($1, $2, $3, 'pending')
		 RETURNING id`,
		name, imgURL, user.ID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create anime request: %w", err)
	}

	return s.AnimeRequestByID(id)
}

func (s *RequestService) animeNotInCatalog(name string) check {
	return func() *FieldError {
		if name == "" {
			return nil
		}
		if _, err := s.catalog.AnimeByName(name); err == nil {
			return &FieldError{Field: "name", Message: "L'anime est déjà dans la base de données"}
		}
		return nil
	}
}

const songRequestColumns = `sr.id, sr.title, sr.interpreter, sr.relation, sr.ytb_url, sr.spoty_url,
	sr.anime_id, a.name, sr.user_id, u.username, sr.status, sr.created_at, sr.updated_at`

const songRequestJoins = `FROM song_requests sr
	JOIN animes a ON sr.anime_id = a.id
	JOIN users u ON sr.user_id = u.id`

func scanSongRequests(rows *sql.Rows) ([]models.SongRequest, error) {
	defer rows.Close()
	var requests []models.SongRequest
	for rows.Next() {
		var req models.SongRequest
		err := rows.Scan(&req.ID, &req.Title, &req.Interpreter, &req.Relation, &req.YtbURL, &req.SpotyURL,
			&req.AnimeID, &req.AnimeName, &req.UserID, &req.Username, &req.Status, &req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

const animeRequestColumns = `ar.id, ar.name, ar.img_url, ar.user_id, u.username, ar.status, ar.created_at, ar.updated_at`

const animeRequestJoins = `FROM anime_requests ar
	JOIN users u ON ar.user_id = u.id`

func scanAnimeRequests(rows *sql.Rows) ([]models.AnimeRequest, error) {
	defer rows.Close()
	var requests []models.AnimeRequest
	for rows.Next() {
		var req models.AnimeRequest
		err := rows.Scan(&req.ID, &req.Name, &req.ImgURL, &req.UserID, &req.Username,
			&req.Status, &req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *RequestService) SongRequestByID(id int64) (*models.SongRequest, error) {
	rows, err := s.db.Query("SELECT "+songRequestColumns+" "+songRequestJoins+" WHERE sr.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to load song request: %w", err)
	}
	requests, err := scanSongRequests(rows)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, ErrNotFound
	}
	return &requests[0], nil
}

func (s *RequestService) AnimeRequestByID(id int64) (*models.AnimeRequest, error) {
	rows, err := s.db.Query("SELECT "+animeRequestColumns+" "+animeRequestJoins+" WHERE ar.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to load anime request: %w", err)
	}
	requests, err := scanAnimeRequests(rows)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, ErrNotFound
	}
	return &requests[0], nil
}

// SongRequestsByUser lists a user's own song requests, any status.
func (s *RequestService) SongRequestsByUser(userID int64) ([]models.SongRequest, error) {
	rows, err := s.db.Query(
		"SELECT "+songRequestColumns+" "+songRequestJoins+" WHERE sr.user_id = $1 ORDER BY sr.created_at DESC, sr.id DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list song requests: %w", err)
	}
	return scanSongRequests(rows)
}

// AnimeRequestsByUser lists a user's own anime requests, any status.
func (s *RequestService) AnimeRequestsByUser(userID int64) ([]models.AnimeRequest, error) {
	rows, err := s.db.Query(
		"SELECT "+animeRequestColumns+" "+animeRequestJoins+" WHERE ar.user_id = $1 ORDER BY ar.created_at DESC, ar.id DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list anime requests: %w", err)
	}
	return scanAnimeRequests(rows)
}

// SongRequests lists every song request for the administration review
// page. Authorization for the page lives in the handler; resolution
// itself is re-checked per mutation.
func (s *RequestService) SongRequests() ([]models.SongRequest, error) {
	rows, err := s.db.Query("SELECT " + songRequestColumns + " " + songRequestJoins + " ORDER BY sr.created_at DESC, sr.id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list song requests: %w", err)
	}
	return scanSongRequests(rows)
}

func (s *RequestService) AnimeRequests() ([]models.AnimeRequest, error) {
	rows, err := s.db.Query("SELECT " + animeRequestColumns + " " + animeRequestJoins + " ORDER BY ar.created_at DESC, ar.id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list anime requests: %w", err)
	}
	return scanAnimeRequests(rows)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// markResolved flips a pending request to its terminal status. The
// UPDATE is gated on status so a request resolves at most once.
func markResolved(db execer, table string, id int64, status string) error {
	res, err := db.Exec(
		"UPDATE "+table+" SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND status = 'pending'",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyResolved
	}
	return nil
}

// ResolveSong applies an administrator's decision to a pending song
// request. Accepting creates the song in the catalog; the anime is
// re-resolved by name at resolution time since it could have been
// deleted or renamed since submission. Terminal requests are refused.
func (s *RequestService) ResolveSong(id int64, decision Decision, principal *models.User) error {
	if !principal.IsAdmin() {
		return ErrUnauthorized
	}

	req, err := s.SongRequestByID(id)
	if err != nil {
		return err
	}
	if req.Resolved() {
		return ErrAlreadyResolved
	}

	if decision == DecisionReject {
		return markResolved(s.db, "song_requests", id, models.StatusRejected)
	}

	anime, err := s.catalog.AnimeByName(req.AnimeName)
	if err != nil {
		return fmt.Errorf("failed to resolve anime %q: %w", req.AnimeName, err)
	}

	// The status gate and the catalog insert commit together, so two
	// racing accepts cannot both create the song.
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := markResolved(tx, "song_requests", id, models.StatusAccepted); err != nil {
		return err
	}
	_, err = tx.Exec(
		`INSERT INTO songs (title, interpreter, relation, ytb_url, spoty_url, anime_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		req.Title, req.Interpreter, req.Relation, req.YtbURL, req.SpotyURL, anime.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}

	return tx.Commit()
}

// ResolveAnime is the anime counterpart. Acceptance carries both the
// proposed name and the thumbnail URL onto the created catalog entry.
func (s *RequestService) ResolveAnime(id int64, decision Decision, principal *models.User) error {
	if !principal.IsAdmin() {
		return ErrUnauthorized
	}

	req, err := s.AnimeRequestByID(id)
	if err != nil {
		return err
	}
	if req.Resolved() {
		return ErrAlreadyResolved
	}

	if decision == DecisionReject {
		return markResolved(s.db, "anime_requests", id, models.StatusRejected)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := markResolved(tx, "anime_requests", id, models.StatusAccepted); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO animes (name, img_url) VALUES ($1, $2)", req.Name, req.ImgURL); err != nil {
		return fmt.Errorf("failed to create anime: %w", err)
	}

	return tx.Commit()
}

// DeleteSongRequest removes a request row. Administrators delete
// unconditionally; everyone else only their own.
func (s *RequestService) DeleteSongRequest(id int64, principal *models.User) error {
	return s.deleteRequest("song_requests", id, principal)
}

func (s *RequestService) DeleteAnimeRequest(id int64, principal *models.User) error {
	return s.deleteRequest("anime_requests", id, principal)
}

func (s *RequestService) deleteRequest(table string, id int64, principal *models.User) error {
	if !principal.IsAdmin() {
		var ownerID int64
		err := s.db.QueryRow("SELECT user_id FROM "+table+" WHERE id = $1", id).Scan(&ownerID)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load request: %w", err)
		}
		if ownerID != principal.ID {
			return ErrUnauthorized
		}
	}

	if _, err := s.db.Exec("DELETE FROM "+table+" WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return nil
}
