package model

import (
	"time"
)

// User is the credential record backing a Profile. Exactly one Profile is
// created per User at registration time.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
