package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates the harvest cannot start because its
	// configuration is incomplete or out of range. Never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrMalformedPage indicates a search page could not be decoded.
	// The collector treats it as the end of the current window.
	ErrMalformedPage = errors.New("malformed search page")

	// ErrUnauthorized indicates the search source rejected the credential.
	// The collector aborts instead of failing every window.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnsupportedFormat indicates an unknown output format.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// ConfigurationError describes which setting prevented a harvest from starting.
type ConfigurationError struct {
	Field  string
	Reason string
}

// NewConfigurationError creates a ConfigurationError for field.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// Is reports ConfigurationError as ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// RateLimitError is returned by a search source when the request was throttled.
// ResetAt is zero when the source gave no reset hint.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
	Secondary bool
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "rate limit exceeded"
	}
	return fmt.Sprintf("rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Is reports RateLimitError as ErrRateLimited.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
