package commands

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/teranos/itemquery/am"
	"github.com/teranos/itemquery/db"
	"github.com/teranos/itemquery/errors"
	"github.com/teranos/itemquery/logger"
	"github.com/teranos/itemquery/translation"
)

// openDatabase opens and migrates the catalog database.
// If dbPath is empty, the configured catalog.database_path is used.
func openDatabase(cfg *am.Config, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		dbPath = cfg.GetCatalogDatabasePath()
	}

	database, err := db.OpenWithMigrations(dbPath, logger.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog database at %s", dbPath)
	}
	return database, nil
}

// loadCatalog reads the catalog from the configured source
func loadCatalog(ctx context.Context, cfg *am.Config) (*translation.Catalog, error) {
	source := cfg.GetCatalogSource()
	start := time.Now()

	var (
		catalog *translation.Catalog
		err     error
	)

	switch source {
	case am.CatalogSourceDefault:
		catalog = translation.DefaultCatalog()

	case am.CatalogSourceFile:
		catalog, err = translation.LoadCatalogFile(cfg.Catalog.Path)

	case am.CatalogSourceSQLite:
		var database *sql.DB
		database, err = openDatabase(cfg, "")
		if err != nil {
			return nil, err
		}
		defer database.Close()
		catalog, err = translation.NewSQLiteStore(database, logger.Logger).Load(ctx)

	case am.CatalogSourcePostgres:
		catalog, err = translation.LoadCatalogPostgres(ctx, cfg.Catalog.DSN)

	default:
		return nil, errors.WithHintf(
			errors.Newf("unknown catalog source %q", source),
			"catalog.source must be one of %v", am.CatalogSources,
		)
	}

	if err != nil {
		return nil, catalogLoadFailure(source, err)
	}

	logger.Infow("Catalog loaded",
		logger.FieldSource, source,
		logger.FieldCount, len(catalog.Entries),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return catalog, nil
}

func catalogLoadFailure(source string, err error) error {
	err = errors.Wrapf(err, "failed to load %s catalog", source)
	if db.IsDatabaseClosed(err) {
		return errors.WithHint(err, "the catalog database was closed while loading, usually by an interrupt; run the command again")
	}
	return err
}

// openRegistry loads the configured catalog and indexes it
func openRegistry(ctx context.Context, cfg *am.Config) (*translation.Registry, error) {
	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	registry := translation.NewRegistry(catalog)
	registry.SetLogger(logger.ComponentLogger("registry"))
	return registry, nil
}

// liveRegistry lets the catalog be swapped while queries are served
type liveRegistry struct {
	mu       sync.RWMutex
	registry *translation.Registry
}

func newLiveRegistry(registry *translation.Registry) *liveRegistry {
	return &liveRegistry{registry: registry}
}

func (l *liveRegistry) current() *translation.Registry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry
}

func (l *liveRegistry) swap(registry *translation.Registry) {
	l.mu.Lock()
	l.registry = registry
	l.mu.Unlock()
}

// Search satisfies parser.Registry against the current catalog
func (l *liveRegistry) Search(query string) translation.SearchResult {
	return l.current().Search(query)
}
