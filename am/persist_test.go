package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".itemquery", "am.toml")

	require.NoError(t, SetValue(path, "catalog.source", "file"))
	require.NoError(t, SetValue(path, "catalog.watch", "true"))
	require.NoError(t, SetValue(path, "parser.suggestion_limit", "7"))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, 7, cfg.Parser.SuggestionLimit)

	// Every write after the first rotated a backup
	_, err = os.Stat(path + ".back1")
	assert.NoError(t, err)
	_, err = os.Stat(path + ".back2")
	assert.NoError(t, err)
	_, err = os.Stat(path + ".back3")
	assert.True(t, os.IsNotExist(err))
}

func TestSetValue_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "catalog.colour", "red"},
		{"bool key", "catalog.watch", "sometimes"},
		{"int key", "parser.suggestion_limit", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, SetValue(path, tt.key, tt.value))
		})
	}

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "failed writes leave no file")
}

func TestCreateBackup_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")

	for _, content := range []string{"one", "two", "three", "four", "five"} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		require.NoError(t, createBackup(path))
	}

	for suffix, want := range map[string]string{".back1": "five", ".back2": "four", ".back3": "three"} {
		got, err := os.ReadFile(path + suffix)
		require.NoError(t, err)
		assert.Equal(t, want, string(got), suffix)
	}
}
