package github

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// GitHub-specific errors.
var (
	// ErrInvalidBaseURL indicates the configured API base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("github: invalid base URL")
)

// APIError represents a GitHub API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Is reports a 401 response as domain.ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}
