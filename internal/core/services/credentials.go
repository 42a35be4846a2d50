package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// ResolveToken returns explicit when set, otherwise the provider's token.
// An empty result is a configuration error and is never retried.
func ResolveToken(ctx context.Context, explicit string, provider driven.TokenProvider) (string, error) {
	if token := strings.TrimSpace(explicit); token != "" {
		return token, nil
	}

	if provider != nil {
		token, err := provider.GetToken(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: token: %w", domain.ErrConfiguration, err)
		}
		if token = strings.TrimSpace(token); token != "" {
			return token, nil
		}
	}

	return "", domain.NewConfigurationError("token",
		"no GitHub token supplied; pass --token or set GITHUB_TOKEN")
}
