package auth

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// Ensure ChainProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*ChainProvider)(nil)

// ChainProvider returns the first non-empty token from its providers, in order.
type ChainProvider struct {
	providers []driven.TokenProvider
}

// NewChainProvider creates a chain. Nil providers are skipped.
func NewChainProvider(providers ...driven.TokenProvider) *ChainProvider {
	chain := &ChainProvider{}
	for _, p := range providers {
		if p != nil {
			chain.providers = append(chain.providers, p)
		}
	}
	return chain
}

// GetToken returns the first non-empty token. A provider error stops the chain.
func (c *ChainProvider) GetToken(ctx context.Context) (string, error) {
	for _, p := range c.providers {
		token, err := p.GetToken(ctx)
		if err != nil {
			return "", fmt.Errorf("%s token: %w", p.AuthMethod(), err)
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}

// AuthMethod returns the method of the provider that currently supplies the token.
func (c *ChainProvider) AuthMethod() domain.AuthMethod {
	for _, p := range c.providers {
		if p.IsAuthenticated() {
			return p.AuthMethod()
		}
	}
	return domain.AuthMethodNone
}

// IsAuthenticated returns true if any provider has a token.
func (c *ChainProvider) IsAuthenticated() bool {
	return c.AuthMethod() != domain.AuthMethodNone
}
