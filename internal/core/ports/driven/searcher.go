package driven

import (
	"context"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// RepoSearcher issues repository-search requests against a remote source.
type RepoSearcher interface {
	// SearchRepositories fetches exactly one page for q.
	//
	// Implementations must return a *domain.RateLimitError when the source
	// throttles the request, wrap domain.ErrMalformedPage when the body cannot
	// be decoded, match domain.ErrUnauthorized when the credential is rejected,
	// and return any other failure as-is. They must not retry.
	// A non-empty q.Token takes precedence over any configured credential.
	SearchRepositories(ctx context.Context, q domain.SearchQuery) (*domain.SearchPage, error)
}
