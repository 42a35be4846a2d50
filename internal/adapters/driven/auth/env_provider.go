package auth

import (
	"context"
	"os"
	"strings"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// DefaultTokenEnv is the environment variable read when none is configured.
const DefaultTokenEnv = "GITHUB_TOKEN"

// Ensure EnvProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*EnvProvider)(nil)

// EnvProvider reads the token from an environment variable on every call.
type EnvProvider struct {
	name   string
	lookup func(string) (string, bool)
}

// NewEnvProvider creates a provider reading name (DefaultTokenEnv when empty).
func NewEnvProvider(name string) *EnvProvider {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTokenEnv
	}
	return &EnvProvider{name: name, lookup: os.LookupEnv}
}

// Name returns the environment variable name.
func (p *EnvProvider) Name() string {
	return p.name
}

// GetToken returns the variable's value, or "" when unset.
func (p *EnvProvider) GetToken(_ context.Context) (string, error) {
	val, _ := p.lookup(p.name)
	return strings.TrimSpace(val), nil
}

// AuthMethod returns AuthMethodEnv.
func (p *EnvProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodEnv
}

// IsAuthenticated returns true if the variable holds a token.
func (p *EnvProvider) IsAuthenticated() bool {
	token, _ := p.GetToken(context.Background())
	return token != ""
}
