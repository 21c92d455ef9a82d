package service_test

import (
	"strings"
	"testing"

	"github.com/minigram/minigram/internal/model"
	"github.com/stretchr/testify/require"
)

func TestPhotoAttachURL(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")

	post, err := s.post.Create(alice, "linked image", nil)
	require.NoError(t, err)

	photo, err := s.photo.AttachURL(post.ID, "https://example.com/pic.jpg")
	require.NoError(t, err)

	source, ok := photo.Source()
	require.True(t, ok)
	require.Equal(t, model.ImageSourceURL, source.Kind)
	require.Equal(t, "https://example.com/pic.jpg", s.photo.ResolveURL(photo))

	// Nothing goes to object storage for URL-backed photos
	require.Zero(t, s.storage.len())
}

func TestPhotoUploadRecordsMalformedFiles(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")

	// A text file is not a valid image, but uploads are still recorded
	files := uploadFiles(t, map[string][]byte{"junk.txt": []byte("not an image at all")})

	post, err := s.post.Create(alice, "questionable upload", files)
	require.NoError(t, err)

	photos, err := s.photo.ByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	require.Equal(t, 1, s.storage.len())

	source, ok := photos[0].Source()
	require.True(t, ok)
	require.Equal(t, model.ImageSourceFile, source.Kind)
	require.True(t, strings.HasSuffix(source.Path, ".txt"))

	url := s.photo.ResolveURL(photos[0])
	require.Equal(t, "mem://"+source.Path, url)
}
