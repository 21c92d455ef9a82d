package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/model"
)

type LikeRepository interface {
	Insert(like *model.Like) error
	Delete(postID, profileID string) error
	Exists(postID, profileID string) (bool, error)
	ByPost(postID string) ([]*model.Like, error)
	CountByPost(postID string) (int, error)
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Insert records the like if it does not exist yet. Idempotent at the
// storage layer.
func (r *likeRepository) Insert(like *model.Like) error {
	query := `INSERT INTO likes (id, post_id, profile_id, timestamp)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (post_id, profile_id) DO NOTHING`

	_, err := r.db.Exec(query, like.ID, like.PostID, like.ProfileID, like.Timestamp)
	return err
}

// Delete removes the like. Deleting an absent like is a no-op.
func (r *likeRepository) Delete(postID, profileID string) error {
	_, err := r.db.Exec(`DELETE FROM likes WHERE post_id = $1 AND profile_id = $2`, postID, profileID)
	return err
}

func (r *likeRepository) Exists(postID, profileID string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM likes WHERE post_id = $1 AND profile_id = $2`,
		postID, profileID).Scan(&count)
	return count > 0, err
}

func (r *likeRepository) ByPost(postID string) ([]*model.Like, error) {
	var likes []*model.Like
	query := `SELECT * FROM likes WHERE post_id = $1 ORDER BY timestamp DESC`

	err := r.db.Select(&likes, query, postID)
	if err != nil {
		return nil, err
	}

	return likes, nil
}

func (r *likeRepository) CountByPost(postID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&count)
	return count, err
}
