package am

import "fmt"

// Config represents the itemquery configuration
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog" toml:"catalog" json:"catalog" yaml:"catalog"`
	Inventory InventoryConfig `mapstructure:"inventory" toml:"inventory" json:"inventory" yaml:"inventory"`
	Parser    ParserConfig    `mapstructure:"parser" toml:"parser" json:"parser" yaml:"parser"`
	Log       LogConfig       `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// Catalog sources
const (
	CatalogSourceDefault  = "default"  // Built-in vanilla subset
	CatalogSourceFile     = "file"     // TOML catalog file
	CatalogSourceSQLite   = "sqlite"   // Catalog imported into SQLite
	CatalogSourcePostgres = "postgres" // Shared PostgreSQL catalog
)

// CatalogSources lists the accepted catalog.source values
var CatalogSources = []string{
	CatalogSourceDefault,
	CatalogSourceFile,
	CatalogSourceSQLite,
	CatalogSourcePostgres,
}

// CatalogConfig selects where translated labels come from
type CatalogConfig struct {
	Source       string `mapstructure:"source" toml:"source" json:"source" yaml:"source"`
	Path         string `mapstructure:"path" toml:"path" json:"path" yaml:"path"`                                     // TOML catalog (source = file)
	DatabasePath string `mapstructure:"database_path" toml:"database_path" json:"database_path" yaml:"database_path"` // SQLite database (source = sqlite, and catalog import)
	DSN          string `mapstructure:"dsn" toml:"-" json:"-" yaml:"-"`                                               // PostgreSQL connection string (source = postgres)
	Watch        bool   `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`                                 // Reload the catalog file when it changes
}

// InventoryConfig locates the items queries are matched against
type InventoryConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" yaml:"path"`
}

// ParserConfig tunes error reporting of the query parser
type ParserConfig struct {
	SuggestionLimit int `mapstructure:"suggestion_limit" toml:"suggestion_limit" json:"suggestion_limit" yaml:"suggestion_limit"` // Did-you-mean suggestions on no match (0 = none)
}

// LogConfig configures logger output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"` // Color theme: everforest, gruvbox, none
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Catalog: {Source: %s}, Inventory: %s, Parser: {SuggestionLimit: %d}}",
		c.GetCatalogSource(), c.Inventory.Path, c.Parser.SuggestionLimit)
}
