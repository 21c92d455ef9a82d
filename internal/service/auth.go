package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService struct {
	userRepository    repository.UserRepository
	profileRepository repository.ProfileRepository
	jwtSecret         string
	isProduction      bool
	jwtExpiry         time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	profileRepository repository.ProfileRepository,
	jwtSecret string,
	isProduction bool,
	jwtExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository:    userRepository,
		profileRepository: profileRepository,
		jwtSecret:         jwtSecret,
		isProduction:      isProduction,
		jwtExpiry:         jwtExpiry,
	}
}

// RegisterInput carries the two-in-one registration form: account
// credentials plus the profile fields.
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
	BioText     string
	ImageURL    string
}

// Register creates the account and its profile as one logical action. All
// fields are validated before either insert happens; the inserts themselves
// share a transaction, so a failure persists neither. The profile's username
// is copied from the new account.
func (s *AuthService) Register(in RegisterInput) (*model.User, *model.Profile, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.DisplayName = strings.TrimSpace(in.DisplayName)

	fieldErrs := FieldErrors{}
	if err := validation.ValidateUsername(in.Username); err != nil {
		fieldErrs["username"] = err.Error()
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		fieldErrs["password"] = err.Error()
	}
	if err := validation.ValidateDisplayName(in.DisplayName); err != nil {
		fieldErrs["display_name"] = err.Error()
	}
	if len(fieldErrs) > 0 {
		return nil, nil, fieldErrs
	}

	hash, err := s.HashPassword(in.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	profile := &model.Profile{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: in.DisplayName,
		BioText:     strings.TrimSpace(in.BioText),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		JoinedAt:    now,
	}

	err = s.userRepository.CreateWithProfile(user, profile)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, nil, FieldErrors{"username": "username already taken"}
		}
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	return user, profile, nil
}

func (s *AuthService) Login(username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// JWTExpiry returns the configured session lifetime.
func (s *AuthService) JWTExpiry() time.Duration {
	return s.jwtExpiry
}
