package service

import (
	"strings"

	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/validation"
)

type ProfileService struct {
	profileRepo  repository.ProfileRepository
	postRepo     repository.PostRepository
	followerRepo repository.FollowerRepository
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	postRepo repository.PostRepository,
	followerRepo repository.FollowerRepository,
) *ProfileService {
	return &ProfileService{
		profileRepo:  profileRepo,
		postRepo:     postRepo,
		followerRepo: followerRepo,
	}
}

// ProfilePage is the view state for a profile detail page.
type ProfilePage struct {
	Profile        *model.Profile
	Posts          []*model.Post
	FollowerCount  int
	FollowingCount int

	// IsFollowing reports whether the viewing actor follows this profile.
	// False for guests and profile-less accounts.
	IsFollowing bool
}

func (s *ProfileService) ByID(id string) (*model.Profile, error) {
	return s.profileRepo.ByID(id)
}

func (s *ProfileService) ByUserID(userID string) (*model.Profile, error) {
	return s.profileRepo.ByUserID(userID)
}

func (s *ProfileService) All() ([]*model.Profile, error) {
	return s.profileRepo.All()
}

// Detail assembles the profile page. actor may be nil (guest or an account
// without a profile); the page degrades rather than failing.
func (s *ProfileService) Detail(profileID string, actor *model.Profile) (*ProfilePage, error) {
	profile, err := s.profileRepo.ByID(profileID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ByProfile(profileID)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.followerRepo.FollowerCount(profileID)
	if err != nil {
		return nil, err
	}

	followingCount, err := s.followerRepo.FollowingCount(profileID)
	if err != nil {
		return nil, err
	}

	page := &ProfilePage{
		Profile:        profile,
		Posts:          posts,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}

	if actor != nil {
		page.IsFollowing, err = s.followerRepo.Exists(actor.ID, profileID)
		if err != nil {
			return nil, err
		}
	}

	return page, nil
}

func (s *ProfileService) Followers(profileID string) ([]*model.Profile, error) {
	if _, err := s.profileRepo.ByID(profileID); err != nil {
		return nil, err
	}
	return s.followerRepo.FollowersOf(profileID)
}

func (s *ProfileService) Following(profileID string) ([]*model.Profile, error) {
	if _, err := s.profileRepo.ByID(profileID); err != nil {
		return nil, err
	}
	return s.followerRepo.FollowingOf(profileID)
}

// Update edits the actor's own profile. The profile is always resolved from
// the acting account, never from a request-supplied id, so one user cannot
// edit another's profile.
func (s *ProfileService) Update(actor *model.Profile, displayName, bioText, imageURL string) error {
	displayName = strings.TrimSpace(displayName)

	if err := validation.ValidateDisplayName(displayName); err != nil {
		return FieldErrors{"display_name": err.Error()}
	}

	return s.profileRepo.Update(actor.ID, displayName, strings.TrimSpace(bioText), strings.TrimSpace(imageURL))
}
