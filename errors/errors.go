// Package errors provides error handling for itemquery.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Wrap with context
//	if err := loadCatalog(path); err != nil {
//	    return errors.Wrapf(err, "failed to load catalog %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "did you mean \"diamond-sword\"?")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// AssertionFailedf reports a programming error, not a user error.
var AssertionFailedf = crdb.AssertionFailedf

// Common sentinel errors for use across itemquery.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")

	// ErrInvalidCatalog indicates a catalog source could not be interpreted
	ErrInvalidCatalog = New("invalid catalog")

	// ErrUnsupportedCatalogVersion indicates a catalog file declares a format
	// version this build cannot read
	ErrUnsupportedCatalogVersion = New("unsupported catalog format version")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidCatalogError checks if an error is or wraps ErrInvalidCatalog
func IsInvalidCatalogError(err error) bool {
	return err != nil && Is(err, ErrInvalidCatalog)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewInvalidCatalogError creates an invalid-catalog error with a formatted message
func NewInvalidCatalogError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidCatalog, Newf(format, args...).Error())
}
