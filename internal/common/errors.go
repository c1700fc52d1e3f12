package common

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrRateLimited    = errors.New("rate limited")
	ErrNetwork        = errors.New("network error")
	ErrNotFound       = errors.New("not found")
	ErrUpstream       = errors.New("upstream error")
)

func ValidationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// LogToolFailure records a failed tool call at a severity matching its
// classification: caller mistakes are warnings, upstream and transport
// failures are errors.
func LogToolFailure(logger *Logger, tool string, err error) {
	entry := logger.WithFields(map[string]interface{}{
		"tool":  tool,
		"error": err.Error(),
	})
	switch {
	case IsValidation(err), IsNotFound(err):
		entry.Warn("tool call rejected")
	case IsRateLimited(err):
		entry.Warn("upstream rate limit hit")
	case IsAuthentication(err):
		entry.Error("upstream rejected session")
	case IsNetwork(err), IsUpstream(err):
		entry.Error("upstream call failed")
	default:
		entry.Error("tool call failed")
	}
}
