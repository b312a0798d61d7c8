package translation

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/teranos/itemquery/db"
	"github.com/teranos/itemquery/errors"
)

// SQLiteStore persists one catalog in the tables created by db.Migrate
type SQLiteStore struct {
	database *sql.DB
	logger   *zap.SugaredLogger
}

// NewSQLiteStore wraps a migrated database
func NewSQLiteStore(database *sql.DB, logger *zap.SugaredLogger) *SQLiteStore {
	return &SQLiteStore{database: database, logger: logger}
}

// Import validates the catalog and replaces the stored one in a single transaction
func (s *SQLiteStore) Import(ctx context.Context, catalog *Catalog) error {
	if err := catalog.Validate(); err != nil {
		return err
	}

	formatVersion := catalog.FormatVersion
	if formatVersion == "" {
		formatVersion = CurrentFormatVersion
	}

	tx, err := s.database.BeginTx(ctx, nil)
	if err != nil {
		return db.WrapStoreError(err, "begin catalog import")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalog_entries"); err != nil {
		return db.WrapStoreError(err, "clear catalog entries")
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO catalog_meta (id, format_version, locale) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET format_version = excluded.format_version,
		   locale = excluded.locale, imported_at = CURRENT_TIMESTAMP`,
		formatVersion, catalog.Locale,
	); err != nil {
		return db.WrapStoreError(err, "write catalog metadata")
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO catalog_entries (position, category, key, label) VALUES (?, ?, ?, ?)")
	if err != nil {
		return db.WrapStoreError(err, "prepare catalog insert")
	}
	defer stmt.Close()

	for i, entry := range catalog.Entries {
		if _, err := stmt.ExecContext(ctx, i, string(entry.Category), entry.Key, entry.Label); err != nil {
			return db.WrapStoreError(err, fmt.Sprintf("insert entry %d (%s)", i, entry.Key))
		}
	}

	if err := tx.Commit(); err != nil {
		return db.WrapStoreError(err, "commit catalog import")
	}

	if s.logger != nil {
		s.logger.Infow("Catalog imported",
			"entries", len(catalog.Entries),
			"locale", catalog.Locale,
			"format_version", formatVersion,
		)
	}
	return nil
}

// Load reads the stored catalog in import order.
// Returns an ErrNotFound error if nothing was imported yet, and an error
// matching db.ErrDatabaseClosed if the database was closed underneath it.
func (s *SQLiteStore) Load(ctx context.Context) (*Catalog, error) {
	catalog := &Catalog{}

	err := s.database.QueryRowContext(ctx, "SELECT format_version, locale FROM catalog_meta WHERE id = 1").
		Scan(&catalog.FormatVersion, &catalog.Locale)
	if err == sql.ErrNoRows {
		return nil, errors.WithHint(
			errors.NewNotFoundError("no catalog imported"),
			"run `itemquery catalog import <file.toml>` first",
		)
	}
	if err != nil {
		return nil, db.WrapStoreError(err, "read catalog metadata")
	}

	rows, err := s.database.QueryContext(ctx, "SELECT category, key, label FROM catalog_entries ORDER BY position")
	if err != nil {
		return nil, db.WrapStoreError(err, "query catalog entries")
	}
	defer rows.Close()

	for rows.Next() {
		var entry Entry
		var category string
		if err := rows.Scan(&category, &entry.Key, &entry.Label); err != nil {
			return nil, db.WrapStoreError(err, "scan catalog entry")
		}
		entry.Category = Category(category)
		catalog.Entries = append(catalog.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, db.WrapStoreError(err, "iterate catalog entries")
	}

	if s.logger != nil {
		s.logger.Debugw("Catalog loaded from sqlite", "entries", len(catalog.Entries))
	}
	return catalog, nil
}
