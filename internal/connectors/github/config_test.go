package github

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/ghmine/internal/adapters/driven/storage/memory"
)

func TestParseConfig(t *testing.T) {
	t.Run("nil store yields defaults", func(t *testing.T) {
		cfg := ParseConfig(nil)

		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
		assert.InDelta(t, ProactiveRate, cfg.RequestsPerSecond, 0.0001)
		assert.Empty(t, cfg.BaseURL)
	})

	t.Run("reads overrides", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set(KeyBaseURL, " https://ghe.example.com/api/v3 ")
		_ = store.Set(KeyTimeoutSeconds, 5)
		_ = store.Set(KeyRequestsPerSecond, 2.5)

		cfg := ParseConfig(store)

		assert.Equal(t, "https://ghe.example.com/api/v3", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.InDelta(t, 2.5, cfg.RequestsPerSecond, 0.0001)
	})

	t.Run("integer rate is accepted", func(t *testing.T) {
		store := memory.NewConfigStore()
		_ = store.Set(KeyRequestsPerSecond, int64(1))

		assert.InDelta(t, 1.0, ParseConfig(store).RequestsPerSecond, 0.0001)
	})
}
