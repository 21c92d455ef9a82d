package service_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/testutil"
	"github.com/stretchr/testify/require"
)

// memStorage keeps stored objects in a map so photo uploads can be tested
// without S3.
type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (m *memStorage) Save(path string, file io.Reader) error {
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = data
	return nil
}

func (m *memStorage) Delete(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, path)
	return nil
}

func (m *memStorage) URL(path string) string {
	return "mem://" + path
}

func (m *memStorage) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// services bundles everything a scenario test needs.
type services struct {
	db      *sqlx.DB
	storage *memStorage

	auth    *service.AuthService
	profile *service.ProfileService
	post    *service.PostService
	photo   *service.PhotoService
	comment *service.CommentService
	social  *service.SocialService
	search  *service.SearchService
}

func newServices(t *testing.T) *services {
	t.Helper()

	db := testutil.NewDB(t)
	store := newMemStorage()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	followerRepo := repository.NewFollowerRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	photoService := service.NewPhotoService(photoRepo, store)

	return &services{
		db:      db,
		storage: store,
		auth:    service.NewAuthService(userRepo, profileRepo, "test-secret", false, time.Hour),
		profile: service.NewProfileService(profileRepo, postRepo, followerRepo),
		post:    service.NewPostService(postRepo, profileRepo, photoRepo, commentRepo, likeRepo, photoService),
		photo:   photoService,
		comment: service.NewCommentService(commentRepo, postRepo),
		social:  service.NewSocialService(profileRepo, postRepo, followerRepo, likeRepo),
		search:  service.NewSearchService(postRepo, profileRepo),
	}
}

// register is a shorthand that creates an account and returns its profile.
func (s *services) register(t *testing.T, username string) *model.Profile {
	t.Helper()

	user, profile, err := s.auth.Register(service.RegisterInput{
		Username:    username,
		Password:    "orange-battery-staple",
		DisplayName: username,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, profile)

	return profile
}

// uploadFiles builds real multipart file headers from in-memory contents,
// the same shape a handler gets from ParseMultipartForm.
func uploadFiles(t *testing.T, contents map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range contents {
		part, err := mw.CreateFormFile("image_files", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["image_files"]
}
