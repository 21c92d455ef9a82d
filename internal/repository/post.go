package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/model"
)

var (
	ErrPostNotFound = errors.New("post not found")
)

type PostRepository interface {
	Create(post *model.Post) error
	ByID(id string) (*model.Post, error)
	ByProfile(profileID string) ([]*model.Post, error)
	Feed(profileID string) ([]*model.Post, error)
	UpdateCaption(postID, caption string) error
	Delete(postID string) error
	Search(query string) ([]*model.Post, error)
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	query := `INSERT INTO posts (id, profile_id, caption, timestamp) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, post.ID, post.ProfileID, post.Caption, post.Timestamp)
	return err
}

func (r *postRepository) ByID(id string) (*model.Post, error) {
	post := &model.Post{}
	query := `SELECT * FROM posts WHERE id = $1`

	err := r.db.Get(post, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}

	return post, err
}

func (r *postRepository) ByProfile(profileID string) ([]*model.Post, error) {
	var posts []*model.Post
	query := `SELECT * FROM posts WHERE profile_id = $1 ORDER BY timestamp DESC`

	err := r.db.Select(&posts, query, profileID)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

// Feed returns posts authored by the profile itself or by any profile it
// follows, newest first. The author's own posts are always included, even
// with an empty follow set.
func (r *postRepository) Feed(profileID string) ([]*model.Post, error) {
	var posts []*model.Post
	query := `
		SELECT * FROM posts
		WHERE profile_id = $1
		   OR profile_id IN (SELECT followed_id FROM followers WHERE follower_id = $1)
		ORDER BY timestamp DESC`

	err := r.db.Select(&posts, query, profileID)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) UpdateCaption(postID, caption string) error {
	result, err := r.db.Exec(`UPDATE posts SET caption = $1, timestamp = $2 WHERE id = $3`,
		caption, time.Now(), postID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}

// Delete removes the post; photos, comments and likes go with it via
// foreign key cascade.
func (r *postRepository) Delete(postID string) error {
	result, err := r.db.Exec(`DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}

// likeEscaper neutralizes LIKE metacharacters so user input matches
// literally. Pair with ESCAPE '\' in the query.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns posts whose caption contains the query as a literal
// case-insensitive substring. % and _ in the query match themselves, not
// wildcards.
func (r *postRepository) Search(query string) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.Select(&posts, `
		SELECT * FROM posts
		WHERE LOWER(caption) LIKE '%' || LOWER($1) || '%' ESCAPE '\'
		ORDER BY timestamp DESC
	`, likeEscaper.Replace(query))
	if err != nil {
		return nil, err
	}

	return posts, nil
}
