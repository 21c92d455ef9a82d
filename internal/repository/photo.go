package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/model"
)

type PhotoRepository interface {
	Create(photo *model.Photo) error
	ByPost(postID string) ([]*model.Photo, error)
	CountByPost(postID string) (int, error)
}

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(photo *model.Photo) error {
	query := `INSERT INTO photos (id, post_id, image_url, storage_path, timestamp) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, photo.ID, photo.PostID, photo.ImageURL, photo.StoragePath, photo.Timestamp)
	return err
}

func (r *photoRepository) ByPost(postID string) ([]*model.Photo, error) {
	var photos []*model.Photo
	query := `SELECT * FROM photos WHERE post_id = $1 ORDER BY timestamp DESC`

	err := r.db.Select(&photos, query, postID)
	if err != nil {
		return nil, err
	}

	return photos, nil
}

func (r *photoRepository) CountByPost(postID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM photos WHERE post_id = $1`, postID).Scan(&count)
	return count, err
}
