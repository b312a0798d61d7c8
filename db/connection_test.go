package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/teranos/itemquery/errors"
)

func TestOpen(t *testing.T) {
	t.Run("opens database successfully", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")

		db, err := Open(dbPath, nil)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		var journalMode string
		require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
		assert.Equal(t, "wal", journalMode)

		var foreignKeys int
		require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys))
		assert.Equal(t, 1, foreignKeys)

		var busyTimeout int
		require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout))
		assert.Equal(t, SQLiteBusyTimeoutMS, busyTimeout)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		db, err := Open("/invalid/nonexistent/path/db.sqlite", nil)

		// sql.Open is lazy on some platforms, Ping surfaces the failure
		if err == nil && db != nil {
			err = db.Ping()
			db.Close()
		}

		assert.Error(t, err)
	})

	t.Run("creates database file if it doesn't exist", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "new.db")

		_, err := os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err))

		db, err := Open(dbPath, nil)
		require.NoError(t, err)
		defer db.Close()

		_, err = os.Stat(dbPath)
		assert.NoError(t, err)
	})

	t.Run("closed database is detected", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
		require.NoError(t, err)
		db.Close()

		_, err = db.Exec("PRAGMA journal_mode")
		require.Error(t, err)
		assert.True(t, IsDatabaseClosed(err))
		assert.True(t, IsDatabaseClosed(errors.Wrap(ErrDatabaseClosed, "import")))
		assert.False(t, IsDatabaseClosed(nil))
	})
}

func TestWrapStoreError(t *testing.T) {
	assert.NoError(t, WrapStoreError(nil, "load"))

	err := WrapStoreError(errors.New("disk I/O error"), "load")
	assert.EqualError(t, err, "load: disk I/O error")
	assert.False(t, IsDatabaseClosed(err))

	err = WrapStoreError(errors.New("sql: database is closed"), "load")
	assert.ErrorIs(t, err, ErrDatabaseClosed)
	assert.Equal(t, "load: catalog database is closed", err.Error())
	assert.Contains(t, errors.GetAllDetails(err), "sql: database is closed")

	// Already classified errors are only annotated
	err = WrapStoreError(errors.Wrap(ErrDatabaseClosed, "begin"), "import")
	assert.Equal(t, "import: begin: catalog database is closed", err.Error())
}

func TestOpen_WithLogger(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	defer db.Close()
}
