package driven

import (
	"context"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// TokenProvider provides access tokens for authenticated API calls.
type TokenProvider interface {
	// GetToken returns the access token.
	// Returns empty string when no credential is available.
	GetToken(ctx context.Context) (string, error)

	// AuthMethod returns how the token is obtained (pat, env, none).
	AuthMethod() domain.AuthMethod

	// IsAuthenticated returns true if a non-empty token is available.
	IsAuthenticated() bool
}
