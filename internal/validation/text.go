package validation

import (
	"errors"
	"strings"
)

// ValidateCaption validates a post caption
func ValidateCaption(caption string) error {
	trimmed := strings.TrimSpace(caption)

	if trimmed == "" {
		return errors.New("caption is required")
	}

	if len(trimmed) > 2200 {
		return errors.New("caption is too long (max 2200 characters)")
	}

	return nil
}

// ValidateCommentText validates comment body text
func ValidateCommentText(text string) error {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return errors.New("comment text is required")
	}

	if len(trimmed) > 1000 {
		return errors.New("comment is too long (max 1000 characters)")
	}

	return nil
}

// ValidateDisplayName validates a profile display name
func ValidateDisplayName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("display name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("display name is too long (max 100 characters)")
	}

	return nil
}
