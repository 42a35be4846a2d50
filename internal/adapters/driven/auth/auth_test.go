package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghmine/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// failingProvider returns an error from GetToken.
type failingProvider struct{}

func (failingProvider) GetToken(context.Context) (string, error) { return "", errors.New("locked") }
func (failingProvider) AuthMethod() domain.AuthMethod          { return domain.AuthMethodPAT }
func (failingProvider) IsAuthenticated() bool                  { return false }

func TestPATProvider(t *testing.T) {
	t.Run("returns trimmed token", func(t *testing.T) {
		p := NewPATProvider("  ghp_abc \n")

		token, err := p.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_abc", token)
		assert.True(t, p.IsAuthenticated())
		assert.Equal(t, domain.AuthMethodPAT, p.AuthMethod())
	})

	t.Run("empty token is unauthenticated", func(t *testing.T) {
		p := NewPATProvider("")

		token, err := p.GetToken(context.Background())
		require.NoError(t, err)
		assert.Empty(t, token)
		assert.False(t, p.IsAuthenticated())
	})
}

func TestEnvProvider(t *testing.T) {
	t.Run("reads default variable", func(t *testing.T) {
		t.Setenv(DefaultTokenEnv, "ghp_env")
		p := NewEnvProvider("")

		assert.Equal(t, DefaultTokenEnv, p.Name())
		token, err := p.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_env", token)
		assert.True(t, p.IsAuthenticated())
		assert.Equal(t, domain.AuthMethodEnv, p.AuthMethod())
	})

	t.Run("reads named variable", func(t *testing.T) {
		t.Setenv("GHMINE_TEST_TOKEN", "ghp_named")
		p := NewEnvProvider("GHMINE_TEST_TOKEN")

		token, err := p.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_named", token)
	})

	t.Run("unset variable is empty", func(t *testing.T) {
		p := NewEnvProvider("GHMINE_TEST_UNSET")
		p.lookup = func(string) (string, bool) { return "", false }

		token, err := p.GetToken(context.Background())
		require.NoError(t, err)
		assert.Empty(t, token)
		assert.False(t, p.IsAuthenticated())
	})
}

func TestNullTokenProvider(t *testing.T) {
	p := NewNullTokenProvider()

	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, p.IsAuthenticated())
	assert.Equal(t, domain.AuthMethodNone, p.AuthMethod())
}

func TestChainProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("first non-empty token wins", func(t *testing.T) {
		env := NewEnvProvider("X")
		env.lookup = func(string) (string, bool) { return "ghp_env", true }
		chain := NewChainProvider(NewPATProvider(""), nil, env, NewPATProvider("ghp_late"))

		token, err := chain.GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ghp_env", token)
		assert.Equal(t, domain.AuthMethodEnv, chain.AuthMethod())
		assert.True(t, chain.IsAuthenticated())
	})

	t.Run("all empty yields empty token", func(t *testing.T) {
		chain := NewChainProvider(NewPATProvider(""), NewNullTokenProvider())

		token, err := chain.GetToken(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
		assert.Equal(t, domain.AuthMethodNone, chain.AuthMethod())
		assert.False(t, chain.IsAuthenticated())
	})

	t.Run("provider error stops the chain", func(t *testing.T) {
		chain := NewChainProvider(failingProvider{}, NewPATProvider("ghp_unused"))

		_, err := chain.GetToken(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locked")
	})
}

func TestNewTokenProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("flag beats config and environment", func(t *testing.T) {
		t.Setenv(DefaultTokenEnv, "ghp_env")
		store := memory.NewConfigStore()
		require.NoError(t, store.Set(KeyToken, "ghp_config"))

		token, err := NewTokenProvider("ghp_flag", store).GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ghp_flag", token)
	})

	t.Run("config beats environment", func(t *testing.T) {
		t.Setenv(DefaultTokenEnv, "ghp_env")
		store := memory.NewConfigStore()
		require.NoError(t, store.Set(KeyToken, "ghp_config"))

		token, err := NewTokenProvider("", store).GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ghp_config", token)
	})

	t.Run("configured environment variable", func(t *testing.T) {
		t.Setenv("GHMINE_PAT", "ghp_custom")
		store := memory.NewConfigStore()
		require.NoError(t, store.Set(KeyTokenEnv, "GHMINE_PAT"))

		token, err := NewTokenProvider("", store).GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ghp_custom", token)
	})

	t.Run("nil store falls back to GITHUB_TOKEN", func(t *testing.T) {
		t.Setenv(DefaultTokenEnv, "ghp_env")

		token, err := NewTokenProvider("", nil).GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ghp_env", token)
	})
}
