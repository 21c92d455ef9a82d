package model

import "time"

type Post struct {
	ID        string    `db:"id"`
	ProfileID string    `db:"profile_id"`
	Caption   string    `db:"caption"`
	Timestamp time.Time `db:"timestamp"` // last modified
}
