package service

import (
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

func (s *UserService) ByUsername(username string) (*model.User, error) {
	return s.userRepository.ByUsername(username)
}

// Delete removes the account; the profile and everything under it go via
// cascade.
func (s *UserService) Delete(id string) error {
	return s.userRepository.Delete(id)
}
