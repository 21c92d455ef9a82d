package validation

import (
	"errors"
	"strings"
)

// weakFragments are substrings that dominate breached-password lists. A
// password containing any of them is rejected regardless of length.
var weakFragments = []string{
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "sunshine",
}

// ValidatePassword enforces length bounds and screens out well-known weak
// fragments. The 72-byte cap matches bcrypt's input limit; anything past it
// would be silently truncated at hash time.
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return errors.New("password must be at least 12 characters")
	}
	if len(password) > 72 {
		return errors.New("password must not exceed 72 characters")
	}

	lower := strings.ToLower(password)
	for _, fragment := range weakFragments {
		if strings.Contains(lower, fragment) {
			return errors.New("password is too common, please choose a stronger one")
		}
	}

	return nil
}
