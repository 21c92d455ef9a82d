package service

import (
	"strings"

	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
)

type SearchService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

func NewSearchService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository) *SearchService {
	return &SearchService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

// SearchResults is the view state for the search results page. An empty
// query produces the empty-query display state, never an unfiltered listing.
type SearchResults struct {
	Query    string
	Empty    bool
	Posts    []*model.Post
	Profiles []*model.Profile
}

// Search matches the query as a case-insensitive substring against post
// captions and against profile usernames, display names and bios.
func (s *SearchService) Search(query string) (*SearchResults, error) {
	query = strings.TrimSpace(query)

	if query == "" {
		return &SearchResults{Empty: true}, nil
	}

	posts, err := s.postRepo.Search(query)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.Search(query)
	if err != nil {
		return nil, err
	}

	return &SearchResults{
		Query:    query,
		Posts:    posts,
		Profiles: profiles,
	}, nil
}
