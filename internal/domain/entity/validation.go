package entity

import (
	"fmt"
	"net/mail"
	"strings"
)

// Validation limits for article and account fields.
const (
	minTitleLength       = 4
	minDescriptionLength = 4
	minBodyLength        = 10
	minCommentLength     = 3
	minUsernameLength    = 3
	maxUsernameLength    = 30
	minPasswordLength    = 8
	maxTagCount          = 10
)

// ValidateArticleDraft validates editor input before an article is created
// or updated. Length checks apply to the trimmed value.
func ValidateArticleDraft(title, description, body string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if len(strings.TrimSpace(title)) < minTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at least %d characters", minTitleLength),
		}
	}
	if len(strings.TrimSpace(description)) < minDescriptionLength {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at least %d characters", minDescriptionLength),
		}
	}
	if len(strings.TrimSpace(body)) < minBodyLength {
		return &ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("body must be at least %d characters", minBodyLength),
		}
	}
	return nil
}

// NormalizeTags cleans a caller-supplied tag list: each entry is split on
// whitespace (so a pasted "go web backend" becomes three tags), duplicates
// are dropped keeping first-occurrence order, and an empty result yields
// nil.
func NormalizeTags(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	var tags []string
	for _, entry := range raw {
		for _, tag := range strings.Fields(entry) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	if len(tags) > maxTagCount {
		return nil, &ValidationError{
			Field:   "tags",
			Message: fmt.Sprintf("tags must not exceed %d entries", maxTagCount),
		}
	}
	return tags, nil
}

// ValidateCommentBody validates a comment body before it is stored.
func ValidateCommentBody(body string) error {
	if len(strings.TrimSpace(body)) < minCommentLength {
		return &ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("comment must be at least %d characters", minCommentLength),
		}
	}
	return nil
}

// ValidateUsername validates a username for registration.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if len(trimmed) < minUsernameLength || len(trimmed) > maxUsernameLength {
		return &ValidationError{
			Field: "username",
			Message: fmt.Sprintf("username must be between %d and %d characters",
				minUsernameLength, maxUsernameLength),
		}
	}
	return nil
}

// ValidateEmail validates an email address using RFC 5322 parsing.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "email is invalid"}
	}
	return nil
}

// ValidatePassword validates a plaintext password before hashing.
func ValidatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < minPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength),
		}
	}
	return nil
}
