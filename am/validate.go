package am

import (
	"strings"

	"github.com/teranos/itemquery/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	source := c.GetCatalogSource()

	switch source {
	case CatalogSourceDefault:
		// Built-in catalog needs nothing
	case CatalogSourceFile:
		if c.Catalog.Path == "" {
			return errors.WithHint(
				errors.New("catalog.path cannot be empty when catalog.source = \"file\""),
				"point catalog.path at a TOML catalog, or run `itemquery catalog export > catalog.toml` to start one",
			)
		}
	case CatalogSourceSQLite:
		// database_path falls back to its default
	case CatalogSourcePostgres:
		if c.Catalog.DSN == "" {
			return errors.WithHint(
				errors.New("catalog.dsn cannot be empty when catalog.source = \"postgres\""),
				"set ITEMQUERY_CATALOG_DSN or DATABASE_URL",
			)
		}
	default:
		return errors.Newf("catalog.source must be one of %s, got %q",
			strings.Join(CatalogSources, ", "), source)
	}

	// Watching only makes sense for a file on disk
	if c.Catalog.Watch && source != CatalogSourceFile {
		return errors.Newf("catalog.watch requires catalog.source = \"file\", got %q", source)
	}

	// Suggestion limit: 0 = no suggestions, negative = invalid
	if c.Parser.SuggestionLimit < 0 {
		return errors.Newf("parser.suggestion_limit must be >= 0, got %d", c.Parser.SuggestionLimit)
	}

	switch c.GetLogTheme() {
	case "everforest", "gruvbox", "none":
	default:
		return errors.Newf("log.theme must be everforest, gruvbox or none, got %q", c.Log.Theme)
	}

	return nil
}
