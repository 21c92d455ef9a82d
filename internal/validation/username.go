package validation

import (
	"errors"
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)

// ValidateUsername validates the account username
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		return errors.New("username is required")
	}

	if len(trimmed) > 30 {
		return errors.New("username is too long (max 30 characters)")
	}

	if !usernamePattern.MatchString(trimmed) {
		return errors.New("username may only contain letters, digits, underscores and dots")
	}

	return nil
}
