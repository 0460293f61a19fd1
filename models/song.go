package models

import (
	"strings"
	"time"
)

// Relation categories derived from a song's free-text relation tag
// ("OP2", "ED1", "OST", ...).
const (
	RelationAll     = "all"
	RelationOpening = "opening"
	RelationEnding  = "ending"
	RelationOST     = "ost"
)

type Song struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Interpreter string    `db:"interpreter"`
	Relation    string    `db:"relation"`
	YtbURL      string    `db:"ytb_url"`
	SpotyURL    string    `db:"spoty_url"`
	AnimeID     int64     `db:"anime_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// RelationCategory maps the relation tag to one of the browse filters:
// tags starting with "OP" are openings, "ED" endings, everything else OST.
func (s Song) RelationCategory() string {
	tag := strings.ToUpper(s.Relation)
	switch {
	case strings.HasPrefix(tag, "OP"):
		return RelationOpening
	case strings.HasPrefix(tag, "ED"):
		return RelationEnding
	default:
		return RelationOST
	}
}
