package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/minigram/minigram/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestFollowTwiceLeavesOneEdge(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	for i := 0; i < 2; i++ {
		target, err := s.social.Follow(alice, bob.ID)
		require.NoError(t, err)
		require.Equal(t, bob.ID, target.ID)
	}

	page, err := s.profile.Detail(bob.ID, alice)
	require.NoError(t, err)
	require.Equal(t, 1, page.FollowerCount)
	require.True(t, page.IsFollowing)
}

func TestSelfFollowIsSuppressed(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")

	target, err := s.social.Follow(alice, alice.ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, target.ID)

	page, err := s.profile.Detail(alice.ID, alice)
	require.NoError(t, err)
	require.Zero(t, page.FollowerCount)
	require.Zero(t, page.FollowingCount)
}

func TestUnfollowAbsentEdgeIsNoOp(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	_, err := s.social.Unfollow(alice, bob.ID)
	require.NoError(t, err)

	_, err = s.social.Follow(alice, uuid.New().String())
	require.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestFollowersAndFollowingPages(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	carol := s.register(t, "carol")

	_, err := s.social.Follow(bob, alice.ID)
	require.NoError(t, err)
	_, err = s.social.Follow(carol, alice.ID)
	require.NoError(t, err)
	_, err = s.social.Follow(alice, carol.ID)
	require.NoError(t, err)

	followers, err := s.profile.Followers(alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := s.profile.Following(alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	require.Equal(t, carol.ID, following[0].ID)
}

func TestSelfLikeIsSuppressed(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")

	post, err := s.post.Create(alice, "my own post", nil)
	require.NoError(t, err)

	liked, err := s.social.Like(alice, post.ID)
	require.NoError(t, err)
	require.Equal(t, post.ID, liked.ID)

	page, err := s.post.Detail(post.ID, alice)
	require.NoError(t, err)
	require.Zero(t, page.LikeCount)
	require.False(t, page.HasLiked)
}

func TestLikeTwiceLeavesOneLike(t *testing.T) {
	s := newServices(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	post, err := s.post.Create(alice, "hello", nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := s.social.Like(bob, post.ID)
		require.NoError(t, err)
	}

	page, err := s.post.Detail(post.ID, bob)
	require.NoError(t, err)
	require.Equal(t, 1, page.LikeCount)
	require.True(t, page.HasLiked)

	_, err = s.social.Unlike(bob, post.ID)
	require.NoError(t, err)
	_, err = s.social.Unlike(bob, post.ID)
	require.NoError(t, err)

	page, err = s.post.Detail(post.ID, bob)
	require.NoError(t, err)
	require.Zero(t, page.LikeCount)
	require.False(t, page.HasLiked)
}
