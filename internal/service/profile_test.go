package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/service"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdateOnlyTouchesActor(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	err := s.profile.Update(alice, "Alice A.", "  likes hiking  ", "")
	require.NoError(t, err)

	got, err := s.profile.ByID(alice.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice A.", got.DisplayName)
	require.Equal(t, "likes hiking", got.BioText)

	other, err := s.profile.ByID(bob.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", other.DisplayName)
}

func TestProfileUpdateRejectsEmptyDisplayName(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")

	err := s.profile.Update(alice, "   ", "", "")
	var fieldErrs service.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "display_name")
}

func TestProfileDetailForGuest(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")

	_, err := s.post.Create(alice, "hello", nil)
	require.NoError(t, err)

	page, err := s.profile.Detail(alice.ID, nil)
	require.NoError(t, err)
	require.Equal(t, alice.ID, page.Profile.ID)
	require.Len(t, page.Posts, 1)
	require.False(t, page.IsFollowing)
}

func TestProfileDetailMissing(t *testing.T) {
	s := newServices(t)
	s.register(t, "alice")

	_, err := s.profile.Detail(uuid.New().String(), nil)
	require.ErrorIs(t, err, repository.ErrProfileNotFound)
}
