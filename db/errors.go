package db

import (
	"database/sql"
	"strings"

	"github.com/teranos/itemquery/errors"
)

// ErrDatabaseClosed marks catalog store calls that reached a closed database
var ErrDatabaseClosed = errors.New("catalog database is closed")

// IsDatabaseClosed reports whether err is ErrDatabaseClosed or one of the
// closed-handle errors database/sql and the sqlite driver return unwrapped.
func IsDatabaseClosed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDatabaseClosed) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	// database/sql keeps its own closed error unexported
	return strings.Contains(err.Error(), "database is closed")
}

// WrapStoreError annotates a failed store call with msg. Closed-handle
// errors become ErrDatabaseClosed, keeping the driver text as detail.
func WrapStoreError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if IsDatabaseClosed(err) && !errors.Is(err, ErrDatabaseClosed) {
		return errors.WithDetail(errors.Wrap(ErrDatabaseClosed, msg), err.Error())
	}
	return errors.Wrap(err, msg)
}
