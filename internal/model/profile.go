package model

import "time"

// Profile is a user's social identity, distinct from the User credential
// record. Username is copied from the owning account at creation and never
// changes afterwards.
type Profile struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
	BioText     string    `db:"bio_text"`
	ImageURL    string    `db:"image_url"`
	JoinedAt    time.Time `db:"joined_at"`
}
