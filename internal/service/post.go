package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/validation"
)

type PostService struct {
	postRepo     repository.PostRepository
	profileRepo  repository.ProfileRepository
	photoRepo    repository.PhotoRepository
	commentRepo  repository.CommentRepository
	likeRepo     repository.LikeRepository
	photoService *PhotoService
}

func NewPostService(
	postRepo repository.PostRepository,
	profileRepo repository.ProfileRepository,
	photoRepo repository.PhotoRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	photoService *PhotoService,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		profileRepo:  profileRepo,
		photoRepo:    photoRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		photoService: photoService,
	}
}

// PostPage is the view state for a post detail page.
type PostPage struct {
	Post      *model.Post
	Author    *model.Profile
	Photos    []*model.Photo
	PhotoURLs []string
	Comments  []*model.Comment
	LikeCount int

	// HasLiked reports whether the viewing actor already liked this post.
	HasLiked bool
}

// FeedItem is one post in a profile's feed, annotated for the viewer.
type FeedItem struct {
	Post          *model.Post
	LikedByViewer bool
}

// Create persists a new post by the actor, then attaches one Photo per
// uploaded file. An invalid caption aborts before any photo exists; photo
// upload failures after that point are logged and skipped rather than
// rolling the post back.
func (s *PostService) Create(actor *model.Profile, caption string, files []*multipart.FileHeader) (*model.Post, error) {
	caption = strings.TrimSpace(caption)

	if err := validation.ValidateCaption(caption); err != nil {
		return nil, FieldErrors{"caption": err.Error()}
	}

	post := &model.Post{
		ID:        uuid.New().String(),
		ProfileID: actor.ID,
		Caption:   caption,
		Timestamp: time.Now(),
	}

	err := s.postRepo.Create(post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			slog.Error("failed to open uploaded photo", "error", err, "post_id", post.ID, "filename", header.Filename)
			continue
		}

		_, err = s.photoService.Upload(post.ID, file, header)
		_ = file.Close()
		if err != nil {
			slog.Error("failed to attach photo", "error", err, "post_id", post.ID, "filename", header.Filename)
		}
	}

	return post, nil
}

func (s *PostService) ByID(id string) (*model.Post, error) {
	return s.postRepo.ByID(id)
}

func (s *PostService) ByProfile(profileID string) ([]*model.Post, error) {
	return s.postRepo.ByProfile(profileID)
}

// Detail assembles the post page. actor may be nil.
func (s *PostService) Detail(postID string, actor *model.Profile) (*PostPage, error) {
	post, err := s.postRepo.ByID(postID)
	if err != nil {
		return nil, err
	}

	author, err := s.profileRepo.ByID(post.ProfileID)
	if err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.ByPost(postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ByPost(postID)
	if err != nil {
		return nil, err
	}

	likeCount, err := s.likeRepo.CountByPost(postID)
	if err != nil {
		return nil, err
	}

	photoURLs := make([]string, 0, len(photos))
	for _, photo := range photos {
		photoURLs = append(photoURLs, s.photoService.ResolveURL(photo))
	}

	page := &PostPage{
		Post:      post,
		Author:    author,
		Photos:    photos,
		PhotoURLs: photoURLs,
		Comments:  comments,
		LikeCount: likeCount,
	}

	if actor != nil {
		page.HasLiked, err = s.likeRepo.Exists(postID, actor.ID)
		if err != nil {
			return nil, err
		}
	}

	return page, nil
}

// Feed returns the actor's feed: their own posts plus posts of everyone they
// follow, newest first, each annotated with whether the actor liked it.
func (s *PostService) Feed(actor *model.Profile) ([]*FeedItem, error) {
	posts, err := s.postRepo.Feed(actor.ID)
	if err != nil {
		return nil, err
	}

	items := make([]*FeedItem, 0, len(posts))
	for _, post := range posts {
		liked, err := s.likeRepo.Exists(post.ID, actor.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, &FeedItem{Post: post, LikedByViewer: liked})
	}

	return items, nil
}

// UpdateCaption edits a post's caption. Only the author may edit.
func (s *PostService) UpdateCaption(actor *model.Profile, postID, caption string) error {
	post, err := s.postRepo.ByID(postID)
	if err != nil {
		return err
	}

	if post.ProfileID != actor.ID {
		return ErrNotOwner
	}

	caption = strings.TrimSpace(caption)
	if err := validation.ValidateCaption(caption); err != nil {
		return FieldErrors{"caption": err.Error()}
	}

	return s.postRepo.UpdateCaption(postID, caption)
}

// Delete removes a post and, via cascade, its photos, comments and likes.
// Only the author may delete. Returns the author's profile id for the
// redirect back to their page.
func (s *PostService) Delete(actor *model.Profile, postID string) (string, error) {
	post, err := s.postRepo.ByID(postID)
	if err != nil {
		return "", err
	}

	if post.ProfileID != actor.ID {
		return "", ErrNotOwner
	}

	err = s.postRepo.Delete(postID)
	if err != nil {
		return "", err
	}

	return post.ProfileID, nil
}
