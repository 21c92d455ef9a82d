package model

import "time"

// Like records a profile liking a post. One like per (post, profile) pair,
// enforced by a unique constraint.
type Like struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	ProfileID string    `db:"profile_id"`
	Timestamp time.Time `db:"timestamp"`
}
