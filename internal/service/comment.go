package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Create persists a comment by the actor on a post. Empty text is rejected
// before anything is persisted.
func (s *CommentService) Create(actor *model.Profile, postID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)

	if err := validation.ValidateCommentText(text); err != nil {
		return nil, FieldErrors{"text": err.Error()}
	}

	post, err := s.postRepo.ByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.New().String(),
		PostID:    post.ID,
		ProfileID: actor.ID,
		Text:      text,
		Timestamp: time.Now(),
	}

	err = s.commentRepo.Create(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// Delete removes a comment. The comment's author and the post's author may
// delete it; anyone else gets ErrNotOwner. Returns the post id for the
// redirect back to the post.
func (s *CommentService) Delete(actor *model.Profile, commentID string) (string, error) {
	comment, err := s.commentRepo.ByID(commentID)
	if err != nil {
		return "", err
	}

	if comment.ProfileID != actor.ID {
		post, err := s.postRepo.ByID(comment.PostID)
		if err != nil {
			return "", err
		}
		if post.ProfileID != actor.ID {
			return "", ErrNotOwner
		}
	}

	err = s.commentRepo.Delete(commentID)
	if err != nil {
		return "", err
	}

	return comment.PostID, nil
}
