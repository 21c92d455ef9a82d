package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchMatchesPostsAndProfiles(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")
	catlady := s.register(t, "catlady")

	match, err := s.post.Create(alice, "my Cat sleeping in the sun", nil)
	require.NoError(t, err)
	_, err = s.post.Create(catlady, "sunset at the beach", nil)
	require.NoError(t, err)

	results, err := s.search.Search("cat")
	require.NoError(t, err)
	require.False(t, results.Empty)
	require.Equal(t, "cat", results.Query)

	require.Len(t, results.Posts, 1)
	require.Equal(t, match.ID, results.Posts[0].ID)

	require.Len(t, results.Profiles, 1)
	require.Equal(t, catlady.ID, results.Profiles[0].ID)
}

func TestSearchEmptyQueryIsDisplayState(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")
	_, err := s.post.Create(alice, "hello", nil)
	require.NoError(t, err)

	results, err := s.search.Search("   ")
	require.NoError(t, err)
	require.True(t, results.Empty)
	require.Empty(t, results.Posts)
	require.Empty(t, results.Profiles)
}

func TestSearchNoMatches(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")
	_, err := s.post.Create(alice, "hello", nil)
	require.NoError(t, err)

	results, err := s.search.Search("zebra")
	require.NoError(t, err)
	require.False(t, results.Empty)
	require.Empty(t, results.Posts)
	require.Empty(t, results.Profiles)
}
