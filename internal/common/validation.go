package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var productIDRegex = regexp.MustCompile(`^\d+$`)

// RequireString trims the value and fails when nothing remains.
func RequireString(name, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrValidation, name)
	}
	return trimmed, nil
}

func RequirePositive(name string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrValidation, name, n)
	}
	return nil
}

// ValidateProductID accepts only all-digit identifiers after trimming.
func ValidateProductID(id string) (string, error) {
	trimmed, err := RequireString("product id", id)
	if err != nil {
		return "", err
	}
	if !productIDRegex.MatchString(trimmed) {
		return "", fmt.Errorf("%w: product id must be numeric, got %q", ErrValidation, trimmed)
	}
	return trimmed, nil
}

// ValidateUUID checks that the identifier is a canonical UUID. The trimmed
// input is returned as-is; case is preserved.
func ValidateUUID(name, id string) (string, error) {
	trimmed, err := RequireString(name, id)
	if err != nil {
		return "", err
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil || parsed.String() != strings.ToLower(trimmed) {
		return "", fmt.Errorf("%w: %s must be a UUID, got %q", ErrValidation, name, trimmed)
	}
	return trimmed, nil
}
