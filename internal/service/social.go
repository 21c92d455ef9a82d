package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
)

// SocialService covers the follow and like edges between profiles and posts.
type SocialService struct {
	profileRepo  repository.ProfileRepository
	postRepo     repository.PostRepository
	followerRepo repository.FollowerRepository
	likeRepo     repository.LikeRepository
}

func NewSocialService(
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
	followerRepo repository.FollowerRepository,
	likeRepo repository.LikeRepository,
) *SocialService {
	return &SocialService{
		profileRepo:  profileRepo,
		postRepo:     postRepo,
		followerRepo: followerRepo,
		likeRepo:     likeRepo,
	}
}

// Follow creates a follow edge from the actor to the target profile.
// Following yourself is silently suppressed; following twice leaves a
// single edge. Returns the target for the redirect.
func (s *SocialService) Follow(actor *model.Profile, targetID string) (*model.Profile, error) {
	target, err := s.profileRepo.ByID(targetID)
	if err != nil {
		return nil, err
	}

	if actor.ID == target.ID {
		return target, nil
	}

	edge := &model.Follower{
		ID:         uuid.New().String(),
		FollowerID: actor.ID,
		FollowedID: target.ID,
		Timestamp:  time.Now(),
	}

	err = s.followerRepo.Insert(edge)
	if err != nil {
		return nil, err
	}

	return target, nil
}

// Unfollow removes the actor's follow edge to the target. Removing an
// absent edge is a no-op.
func (s *SocialService) Unfollow(actor *model.Profile, targetID string) (*model.Profile, error) {
	target, err := s.profileRepo.ByID(targetID)
	if err != nil {
		return nil, err
	}

	err = s.followerRepo.Delete(actor.ID, target.ID)
	if err != nil {
		return nil, err
	}

	return target, nil
}

// Like records the actor liking a post. Liking your own post is silently
// suppressed; liking twice leaves a single like. Returns the post for the
// redirect.
func (s *SocialService) Like(actor *model.Profile, postID string) (*model.Post, error) {
	post, err := s.postRepo.ByID(postID)
	if err != nil {
		return nil, err
	}

	if post.ProfileID == actor.ID {
		return post, nil
	}

	like := &model.Like{
		ID:        uuid.New().String(),
		PostID:    post.ID,
		ProfileID: actor.ID,
		Timestamp: time.Now(),
	}

	err = s.likeRepo.Insert(like)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Unlike removes the actor's like on a post. Removing an absent like is a
// no-op.
func (s *SocialService) Unlike(actor *model.Profile, postID string) (*model.Post, error) {
	post, err := s.postRepo.ByID(postID)
	if err != nil {
		return nil, err
	}

	err = s.likeRepo.Delete(post.ID, actor.ID)
	if err != nil {
		return nil, err
	}

	return post, nil
}
