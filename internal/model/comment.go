package model

import "time"

type Comment struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	ProfileID string    `db:"profile_id"`
	Text      string    `db:"text"`
	Timestamp time.Time `db:"timestamp"`
}
