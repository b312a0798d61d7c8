package am

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/itemquery/errors"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, CatalogSourceDefault, cfg.Catalog.Source)
	assert.Equal(t, DefaultCatalogDatabasePath, cfg.Catalog.DatabasePath)
	assert.Equal(t, DefaultInventoryPath, cfg.Inventory.Path)
	assert.Equal(t, DefaultSuggestionLimit, cfg.Parser.SuggestionLimit)
	assert.False(t, cfg.Catalog.Watch)
	assert.False(t, cfg.Log.JSON)
	assert.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"catalog.source", "default"},
		{"catalog.database_path", "itemquery.db"},
		{"inventory.path", "inventory.yaml"},
		{"parser.suggestion_limit", 3},
		{"log.theme", "everforest"},
		{"log.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Get(tt.key))
		})
	}
}

func TestGetters_ZeroValues(t *testing.T) {
	var cfg Config

	assert.Equal(t, CatalogSourceDefault, cfg.GetCatalogSource())
	assert.Equal(t, DefaultCatalogDatabasePath, cfg.GetCatalogDatabasePath())
	assert.Equal(t, DefaultInventoryPath, cfg.GetInventoryPath())
	assert.Equal(t, DefaultLogTheme, cfg.GetLogTheme())
	assert.Contains(t, cfg.String(), "Source: default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantErr  string
		wantHint bool
	}{
		{
			name:   "zero config is valid",
			config: Config{},
		},
		{
			name:   "file source with path",
			config: Config{Catalog: CatalogConfig{Source: CatalogSourceFile, Path: "catalog.toml", Watch: true}},
		},
		{
			name:     "file source without path",
			config:   Config{Catalog: CatalogConfig{Source: CatalogSourceFile}},
			wantErr:  "catalog.path",
			wantHint: true,
		},
		{
			name:   "sqlite source falls back to default path",
			config: Config{Catalog: CatalogConfig{Source: CatalogSourceSQLite}},
		},
		{
			name:     "postgres source without dsn",
			config:   Config{Catalog: CatalogConfig{Source: CatalogSourcePostgres}},
			wantErr:  "catalog.dsn",
			wantHint: true,
		},
		{
			name:    "unknown source",
			config:  Config{Catalog: CatalogConfig{Source: "redis"}},
			wantErr: `got "redis"`,
		},
		{
			name:    "watch without file",
			config:  Config{Catalog: CatalogConfig{Source: CatalogSourceSQLite, Watch: true}},
			wantErr: "catalog.watch",
		},
		{
			name:   "zero suggestion limit disables suggestions",
			config: Config{Parser: ParserConfig{SuggestionLimit: 0}},
		},
		{
			name:    "negative suggestion limit",
			config:  Config{Parser: ParserConfig{SuggestionLimit: -1}},
			wantErr: "parser.suggestion_limit",
		},
		{
			name:    "unknown theme",
			config:  Config{Log: LogConfig{Theme: "solarized"}},
			wantErr: "log.theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.wantHint {
				assert.NotEmpty(t, errors.GetAllHints(err))
			}
		})
	}
}
