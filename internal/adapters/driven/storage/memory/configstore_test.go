package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

func TestConfigStore_ImplementsInterface(t *testing.T) {
	var _ driven.ConfigStore = NewConfigStore()
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("collect.output", "repos.json"))
	require.NoError(t, store.Set("collect.output", "rust.json"))

	val, ok := store.Get("collect.output")
	assert.True(t, ok)
	assert.Equal(t, "rust.json", val)

	_, ok = store.Get("collect.format")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("github.token", "ghp_x"))
	require.NoError(t, store.Set("collect.page_size", int64(50)))
	require.NoError(t, store.Set("github.timeout_seconds", 12.0))
	require.NoError(t, store.Set("collect.pretty", true))
	require.NoError(t, store.Set("collect.qualifiers", []any{"size:<10000", 7, "fork:false"}))
	require.NoError(t, store.Set("collect.extra", "archived:false"))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("github.token"), "ghp_x"},
		{"string wrong type", store.GetString("collect.pretty"), ""},
		{"int from int64", store.GetInt("collect.page_size"), 50},
		{"int from float64", store.GetInt("github.timeout_seconds"), 12},
		{"int missing", store.GetInt("nope"), 0},
		{"bool", store.GetBool("collect.pretty"), true},
		{"bool wrong type", store.GetBool("github.token"), false},
		{"slice skips non-strings", store.GetStringSlice("collect.qualifiers"), []string{"size:<10000", "fork:false"}},
		{"slice from single string", store.GetStringSlice("collect.extra"), []string{"archived:false"}},
		{"slice missing", store.GetStringSlice("nope"), []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	assert.Empty(t, store.Keys())

	require.NoError(t, store.Set("history.enabled", false))
	require.NoError(t, store.Set("collect.format", "names"))
	require.NoError(t, store.Set("github.token_env", "GH_PAT"))

	assert.Equal(t, []string{"collect.format", "github.token_env", "history.enabled"}, store.Keys())
}

func TestConfigStore_StringSliceIsCopied(t *testing.T) {
	store := NewConfigStore()
	original := []string{"size:<10000"}
	require.NoError(t, store.Set("collect.qualifiers", original))

	got := store.GetStringSlice("collect.qualifiers")
	got[0] = "mutated"

	assert.Equal(t, []string{"size:<10000"}, store.GetStringSlice("collect.qualifiers"))
}

func TestConfigStore_NoOpPersistence(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Set("collect.page_size", i)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("collect.page_size")
			_ = store.Keys()
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"collect.page_size"}, store.Keys())
}
