package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and cwd at fresh temp dirs and clears cached state
func isolate(t *testing.T) (home, project string) {
	t.Helper()

	home = t.TempDir()
	project = filepath.Join(t.TempDir(), "project", "sub")
	require.NoError(t, os.MkdirAll(project, DefaultDirPermissions))

	t.Setenv("HOME", home)
	for _, key := range []string{"ITEMQUERY_CATALOG_SOURCE", "ITEMQUERY_CATALOG_PATH", "ITEMQUERY_CATALOG_DSN", "DATABASE_URL", "ITEMQUERY_DATABASE_PATH"} {
		t.Setenv(key, "")
	}
	t.Chdir(project)

	Reset()
	t.Cleanup(Reset)
	return home, project
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), DefaultDirPermissions))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Precedence(t *testing.T) {
	home, project := isolate(t)

	writeFile(t, filepath.Join(home, ".itemquery", "am.toml"), `
[catalog]
source = "file"
path = "user.toml"

[parser]
suggestion_limit = 5
`)
	// Found by walking up from the working directory
	projectConfig := filepath.Join(filepath.Dir(project), "am.toml")
	writeFile(t, projectConfig, `
[catalog]
path = "project.toml"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Catalog.Source, "user value survives when project sets a sibling key")
	assert.Equal(t, "project.toml", cfg.Catalog.Path, "project wins over user")
	assert.Equal(t, 5, cfg.Parser.SuggestionLimit)
	assert.Equal(t, DefaultInventoryPath, cfg.Inventory.Path, "defaults fill the rest")

	files := LoadedFiles()
	require.Len(t, files, 2)
	assert.Equal(t, projectConfig, files[1])
}

func TestLoad_EnvironmentWins(t *testing.T) {
	home, _ := isolate(t)

	writeFile(t, filepath.Join(home, ".itemquery", "am.toml"), `
[catalog]
source = "file"
path = "user.toml"
`)
	t.Setenv("ITEMQUERY_CATALOG_PATH", "env.toml")
	t.Setenv("DATABASE_URL", "postgres://localhost/items")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env.toml", cfg.Catalog.Path)
	assert.Equal(t, "postgres://localhost/items", cfg.Catalog.DSN)
}

func TestLoad_Cached(t *testing.T) {
	isolate(t)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)

	Reset()
	third, err := Load()
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `
[inventory]
path = "chest.yaml"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "chest.yaml", cfg.Inventory.Path)
	assert.Equal(t, CatalogSourceDefault, cfg.Catalog.Source)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFindProjectConfig(t *testing.T) {
	_, project := isolate(t)

	assert.Empty(t, findProjectConfig())

	root := filepath.Dir(filepath.Dir(project))
	writeFile(t, filepath.Join(root, "am.toml"), "")
	assert.Equal(t, filepath.Join(root, "am.toml"), findProjectConfig())
}

func TestGetConfigIntrospection(t *testing.T) {
	home, _ := isolate(t)

	userConfig := filepath.Join(home, ".itemquery", "am.toml")
	writeFile(t, userConfig, `
[catalog]
source = "postgres"
`)
	t.Setenv("ITEMQUERY_CATALOG_DSN", "postgres://secret@localhost/items")

	introspection := GetConfigIntrospection()
	require.Equal(t, []string{userConfig}, introspection.ConfigFiles)

	byKey := make(map[string]SettingInfo)
	for _, setting := range introspection.Settings {
		byKey[setting.Key] = setting
	}

	assert.Equal(t, SourceUser, byKey["catalog.source"].Source)
	assert.Equal(t, userConfig, byKey["catalog.source"].SourcePath)
	assert.Equal(t, SourceDefault, byKey["inventory.path"].Source)
	assert.Equal(t, SourceEnvironment, byKey["catalog.dsn"].Source)
	assert.Equal(t, "********", byKey["catalog.dsn"].Value, "secrets are masked")

	counts := introspection.CountBySource()
	assert.Equal(t, 1, counts[SourceUser])
	assert.Equal(t, 1, counts[SourceEnvironment])
}
