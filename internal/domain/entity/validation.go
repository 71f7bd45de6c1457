package entity

import (
	"fmt"
	"net/url"
	"unicode/utf8"
)

// Field length limits, matching the persisted schema constraints.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500

	// maxURLLength bounds image URLs to keep pathological input out of storage.
	maxURLLength = 2048
)

// ValidateImageURL validates the format of an item image URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a host.
// Returns a ValidationError if the URL is invalid or empty.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "imageUrl", Message: "is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "imageUrl",
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "imageUrl", Message: "must be a valid URL"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "imageUrl", Message: "must use http or https scheme"}
	}
	if parsed.Host == "" {
		return &ValidationError{Field: "imageUrl", Message: "must have a valid host"}
	}
	return nil
}

// ValidateTitle checks the 1-200 character constraint on item titles.
// Lengths are counted in runes so multi-byte content is not penalized.
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n == 0 {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if n > MaxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be at most %d characters", MaxTitleLength),
		}
	}
	return nil
}

// ValidateDescription checks the 1-500 character constraint on item descriptions.
func ValidateDescription(description string) error {
	n := utf8.RuneCountInString(description)
	if n == 0 {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	if n > MaxDescriptionLength {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("must be at most %d characters", MaxDescriptionLength),
		}
	}
	return nil
}
