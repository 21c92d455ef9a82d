package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/model"
)

type FollowerRepository interface {
	Insert(edge *model.Follower) error
	Delete(followerID, followedID string) error
	Exists(followerID, followedID string) (bool, error)
	FollowersOf(profileID string) ([]*model.Profile, error)
	FollowingOf(profileID string) ([]*model.Profile, error)
	FollowerCount(profileID string) (int, error)
	FollowingCount(profileID string) (int, error)
}

type followerRepository struct {
	db *sqlx.DB
}

func NewFollowerRepository(db *sqlx.DB) FollowerRepository {
	return &followerRepository{db: db}
}

// Insert creates the follow edge if it does not exist yet. The insert is
// idempotent at the storage layer, so concurrent duplicate submissions
// cannot produce two edges.
func (r *followerRepository) Insert(edge *model.Follower) error {
	query := `INSERT INTO followers (id, follower_id, followed_id, timestamp)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (follower_id, followed_id) DO NOTHING`

	_, err := r.db.Exec(query, edge.ID, edge.FollowerID, edge.FollowedID, edge.Timestamp)
	return err
}

// Delete removes the edge. Deleting an absent edge is a no-op, not an error.
func (r *followerRepository) Delete(followerID, followedID string) error {
	_, err := r.db.Exec(`DELETE FROM followers WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID)
	return err
}

func (r *followerRepository) Exists(followerID, followedID string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM followers WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID).Scan(&count)
	return count > 0, err
}

// FollowersOf returns the profiles following the given profile, in
// edge-creation order.
func (r *followerRepository) FollowersOf(profileID string) ([]*model.Profile, error) {
	var profiles []*model.Profile
	query := `
		SELECT p.* FROM profiles p
		JOIN followers f ON f.follower_id = p.id
		WHERE f.followed_id = $1
		ORDER BY f.timestamp ASC`

	err := r.db.Select(&profiles, query, profileID)
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

// FollowingOf returns the profiles the given profile follows.
func (r *followerRepository) FollowingOf(profileID string) ([]*model.Profile, error) {
	var profiles []*model.Profile
	query := `
		SELECT p.* FROM profiles p
		JOIN followers f ON f.followed_id = p.id
		WHERE f.follower_id = $1
		ORDER BY f.timestamp ASC`

	err := r.db.Select(&profiles, query, profileID)
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *followerRepository) FollowerCount(profileID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM followers WHERE followed_id = $1`, profileID).Scan(&count)
	return count, err
}

func (r *followerRepository) FollowingCount(profileID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM followers WHERE follower_id = $1`, profileID).Scan(&count)
	return count, err
}
