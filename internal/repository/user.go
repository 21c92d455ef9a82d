package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrProfileNotFound   = errors.New("profile not found")
)

type UserRepository interface {
	CreateWithProfile(user *model.User, profile *model.Profile) error
	ByID(id string) (*model.User, error)
	ByUsername(username string) (*model.User, error)
	Delete(id string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile inserts the account and its profile in one transaction.
// Registration is all-or-nothing: a failure on either insert persists neither.
func (r *userRepository) CreateWithProfile(user *model.User, profile *model.Profile) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return err
	}

	_, err = tx.Exec(`INSERT INTO profiles (id, user_id, username, display_name, bio_text, image_url, joined_at)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.ID, profile.UserID, profile.Username, profile.DisplayName, profile.BioText, profile.ImageURL, profile.JoinedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.Get(user, query, username)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// isUniqueViolation detects unique constraint errors for both SQLite and PostgreSQL
func isUniqueViolation(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value")
}
