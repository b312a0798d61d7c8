package am

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultCatalogDatabasePath = "itemquery.db"
	DefaultInventoryPath       = "inventory.yaml"
	DefaultSuggestionLimit     = 3
	DefaultLogTheme            = "everforest"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Catalog defaults
	v.SetDefault("catalog.source", CatalogSourceDefault)
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.database_path", DefaultCatalogDatabasePath)
	v.SetDefault("catalog.dsn", "")
	v.SetDefault("catalog.watch", false)

	// Inventory defaults
	v.SetDefault("inventory.path", DefaultInventoryPath)

	// Parser defaults
	v.SetDefault("parser.suggestion_limit", DefaultSuggestionLimit)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultLogTheme)
}

// BindSensitiveEnvVars explicitly binds sensitive configuration to environment variables
func BindSensitiveEnvVars(v *viper.Viper) {
	// PostgreSQL credentials usually live in the DSN
	v.BindEnv("catalog.dsn", "ITEMQUERY_CATALOG_DSN", "DATABASE_URL")

	// Database path
	v.BindEnv("catalog.database_path", "ITEMQUERY_DATABASE_PATH")
}

// GetCatalogSource returns the catalog source (default: built-in catalog)
func (c *Config) GetCatalogSource() string {
	if c.Catalog.Source == "" {
		return CatalogSourceDefault
	}
	return c.Catalog.Source
}

// GetCatalogDatabasePath returns the SQLite catalog database path
func (c *Config) GetCatalogDatabasePath() string {
	if c.Catalog.DatabasePath == "" {
		return DefaultCatalogDatabasePath
	}
	return c.Catalog.DatabasePath
}

// GetInventoryPath returns the inventory file path
func (c *Config) GetInventoryPath() string {
	if c.Inventory.Path == "" {
		return DefaultInventoryPath
	}
	return c.Inventory.Path
}

// GetLogTheme returns the log theme (default: everforest)
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return DefaultLogTheme
	}
	return c.Log.Theme
}

// newDefaultsViper returns a Viper holding only the defaults
func newDefaultsViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}
