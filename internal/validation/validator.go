package validation

import (
	"regexp"
	"strings"

	"enrollhub/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSource validates a catalog source key parameter
func (v *Validator) ValidateSource(source string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(source) == "" {
		errors = append(errors, domain.NewMissingFieldError("source"))
		return errors
	}
	if !isValidKey(source) {
		errors = append(errors, domain.NewInvalidFormatError("source", source))
	}

	return errors
}

// ValidateSlug validates a course slug parameter
func (v *Validator) ValidateSlug(slug string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(slug) == "" {
		errors = append(errors, domain.NewMissingFieldError("slug"))
		return errors
	}
	if !isValidKey(slug) {
		errors = append(errors, domain.NewInvalidFormatError("slug", slug))
	}

	return errors
}

// ValidateSessionID validates an enrollment session identifier
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidKey checks if a source key or slug format is valid
func isValidKey(s string) bool {
	// Allow alphanumeric, hyphens, and underscores, 1-50 characters
	if len(s) == 0 || len(s) > 50 {
		return false
	}
	validKey := regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	return validKey.MatchString(s)
}
