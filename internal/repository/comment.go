package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/model"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	ByID(id string) (*model.Comment, error)
	ByPost(postID string) ([]*model.Comment, error)
	Delete(id string) error
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	query := `INSERT INTO comments (id, post_id, profile_id, text, timestamp) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, comment.ID, comment.PostID, comment.ProfileID, comment.Text, comment.Timestamp)
	return err
}

func (r *commentRepository) ByID(id string) (*model.Comment, error) {
	comment := &model.Comment{}
	query := `SELECT * FROM comments WHERE id = $1`

	err := r.db.Get(comment, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCommentNotFound
	}

	return comment, err
}

func (r *commentRepository) ByPost(postID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY timestamp DESC`

	err := r.db.Select(&comments, query, postID)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}
