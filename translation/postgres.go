package translation

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teranos/itemquery/errors"
)

// LoadCatalogPostgres reads a catalog from a PostgreSQL database holding the
// same catalog_meta and catalog_entries tables as the SQLite store. This lets
// several servers share one centrally maintained catalog.
func LoadCatalogPostgres(ctx context.Context, dsn string) (*Catalog, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}
	defer conn.Close(ctx)

	catalog := &Catalog{}
	err = conn.QueryRow(ctx, "SELECT format_version, locale FROM catalog_meta WHERE id = 1").
		Scan(&catalog.FormatVersion, &catalog.Locale)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.NewNotFoundError("no catalog in postgres database")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read catalog metadata")
	}

	rows, err := conn.Query(ctx, "SELECT category, key, label FROM catalog_entries ORDER BY position")
	if err != nil {
		return nil, errors.Wrap(err, "query catalog entries")
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var entry Entry
		var category string
		err := row.Scan(&category, &entry.Key, &entry.Label)
		entry.Category = Category(category)
		return entry, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan catalog entries")
	}
	catalog.Entries = entries

	if err := catalog.Validate(); err != nil {
		return nil, errors.Wrap(err, "postgres catalog")
	}
	return catalog, nil
}
