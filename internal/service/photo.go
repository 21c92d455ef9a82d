package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/storage"
	"github.com/minigram/minigram/internal/validation"
)

type PhotoService struct {
	photoRepo repository.PhotoRepository
	storage   storage.Storage
}

func NewPhotoService(photoRepo repository.PhotoRepository, storage storage.Storage) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		storage:   storage,
	}
}

// Upload stores an uploaded image in object storage and records a Photo for
// the post. Malformed uploads are still recorded; the validator only flags
// them in the log.
func (s *PhotoService) Upload(postID string, file multipart.File, header *multipart.FileHeader) (*model.Photo, error) {
	if err := validation.ValidateImageFile(header); err != nil {
		slog.Warn("photo upload failed validation, recording anyway",
			"post_id", postID, "filename", header.Filename, "reason", err)
	}

	ext := path.Ext(header.Filename)
	storagePath := path.Join("photos", uuid.New().String()+ext)

	err := s.storage.Save(storagePath, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	photo := &model.Photo{
		ID:          uuid.New().String(),
		PostID:      postID,
		StoragePath: &storagePath,
		Timestamp:   time.Now(),
	}

	err = s.photoRepo.Create(photo)
	if err != nil {
		// DB insert failed, clean up the stored object
		delErr := s.storage.Delete(storagePath)
		if delErr != nil {
			slog.Error("failed to delete photo from storage during cleanup", "error", delErr, "path", storagePath)
		}
		return nil, fmt.Errorf("failed to create photo record: %w", err)
	}

	return photo, nil
}

// AttachURL records a Photo backed by an external image URL.
func (s *PhotoService) AttachURL(postID, imageURL string) (*model.Photo, error) {
	photo := &model.Photo{
		ID:        uuid.New().String(),
		PostID:    postID,
		ImageURL:  &imageURL,
		Timestamp: time.Now(),
	}

	err := s.photoRepo.Create(photo)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo record: %w", err)
	}

	return photo, nil
}

// ResolveURL returns the displayable image URL for a photo: the external URL
// as-is, or a storage URL for uploaded files. Empty when the photo has no
// image source.
func (s *PhotoService) ResolveURL(photo *model.Photo) string {
	source, ok := photo.Source()
	if !ok {
		return ""
	}

	switch source.Kind {
	case model.ImageSourceURL:
		return source.URL
	case model.ImageSourceFile:
		return s.storage.URL(source.Path)
	}
	return ""
}

func (s *PhotoService) ByPost(postID string) ([]*model.Photo, error) {
	return s.photoRepo.ByPost(postID)
}
