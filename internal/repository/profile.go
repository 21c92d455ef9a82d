package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/model"
)

type ProfileRepository interface {
	ByID(id string) (*model.Profile, error)
	ByUserID(userID string) (*model.Profile, error)
	All() ([]*model.Profile, error)
	Update(profileID, displayName, bioText, imageURL string) error
	Search(query string) ([]*model.Profile, error)
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByID(id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Get(&profile, `SELECT * FROM profiles WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) ByUserID(userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Get(&profile, `SELECT * FROM profiles WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) All() ([]*model.Profile, error) {
	var profiles []*model.Profile
	err := r.db.Select(&profiles, `SELECT * FROM profiles ORDER BY joined_at ASC`)
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileRepository) Update(profileID, displayName, bioText, imageURL string) error {
	result, err := r.db.Exec(`
		UPDATE profiles
		SET display_name = $1, bio_text = $2, image_url = $3
		WHERE id = $4
	`, displayName, bioText, imageURL, profileID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// Search returns profiles whose username, display name or bio contains the
// query as a literal case-insensitive substring. % and _ in the query match
// themselves, not wildcards.
func (r *profileRepository) Search(query string) ([]*model.Profile, error) {
	var profiles []*model.Profile
	err := r.db.Select(&profiles, `
		SELECT * FROM profiles
		WHERE LOWER(username) LIKE '%' || LOWER($1) || '%' ESCAPE '\'
		   OR LOWER(display_name) LIKE '%' || LOWER($1) || '%' ESCAPE '\'
		   OR LOWER(bio_text) LIKE '%' || LOWER($1) || '%' ESCAPE '\'
		ORDER BY joined_at ASC
	`, likeEscaper.Replace(query))
	if err != nil {
		return nil, err
	}

	return profiles, nil
}
