package auth

import (
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// Configuration keys consulted by NewTokenProvider.
const (
	KeyToken    = "github.token"
	KeyTokenEnv = "github.token_env"
)

// NewTokenProvider builds the token lookup order for a run:
// the explicit flag value, then github.token from config, then the
// environment variable named by github.token_env (default GITHUB_TOKEN).
// store may be nil.
func NewTokenProvider(flagToken string, store driven.ConfigStore) driven.TokenProvider {
	var configToken, envName string
	if store != nil {
		configToken = store.GetString(KeyToken)
		envName = store.GetString(KeyTokenEnv)
	}

	return NewChainProvider(
		NewPATProvider(flagToken),
		NewPATProvider(configToken),
		NewEnvProvider(envName),
	)
}
