package models

import "time"

type Anime struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	ImgURL    string    `db:"img_url"`
	CreatedAt time.Time `db:"created_at"`
}
