package models

import "time"

// Request lifecycle: pending is the initial state, accepted and rejected
// are terminal. There is no transition out of a terminal state.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type SongRequest struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Interpreter string    `db:"interpreter"`
	Relation    string    `db:"relation"`
	YtbURL      string    `db:"ytb_url"`
	SpotyURL    string    `db:"spoty_url"`
	AnimeID     int64     `db:"anime_id"`
	AnimeName   string    `db:"anime_name"` // joined for display and re-resolution
	UserID      int64     `db:"user_id"`
	Username    string    `db:"username"` // joined for admin listing
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type AnimeRequest struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	ImgURL    string    `db:"img_url"`
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Resolved reports whether the request reached a terminal state.
func (r SongRequest) Resolved() bool {
	return r.Status != StatusPending
}

func (r AnimeRequest) Resolved() bool {
	return r.Status != StatusPending
}
