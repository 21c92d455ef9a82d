package model

import "time"

// Follower is a directed edge: FollowerID follows FollowedID. At most one
// edge exists per pair, enforced by a unique constraint.
type Follower struct {
	ID         string    `db:"id"`
	FollowerID string    `db:"follower_id"`
	FollowedID string    `db:"followed_id"`
	Timestamp  time.Time `db:"timestamp"`
}
