package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoRecord_AbsentFieldsEncodeAsNull(t *testing.T) {
	data, err := json.Marshal(RepoRecord{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"id", "full_name", "license", "owner_login", "topics", "archived", "stargazers_count"} {
		value, ok := decoded[key]
		assert.True(t, ok, "key %s should be present", key)
		assert.Nil(t, value, "key %s should be null", key)
	}
}

func TestRepoRecord_DisplayName(t *testing.T) {
	full := "rust-lang/rust"
	short := "rust"

	assert.Equal(t, "rust-lang/rust", RepoRecord{FullName: &full, Name: &short}.DisplayName())
	assert.Equal(t, "rust", RepoRecord{Name: &short}.DisplayName())
	assert.Equal(t, "<unnamed>", RepoRecord{}.DisplayName())
}
