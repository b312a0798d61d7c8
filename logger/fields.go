package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across itemquery.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRequestID = "request_id"
	FieldComponent = "component"

	// Operations
	FieldOperation = "operation"
	FieldQuery     = "query"
	FieldArgs      = "args"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount      = "count"
	FieldTotalCount = "total_count"

	// Files and sources
	FieldFile   = "file"
	FieldSource = "source"

	// Parsing
	FieldArgumentIndex = "argument_index"
	FieldConflict      = "conflict"
	FieldCategory      = "category"
	FieldTokens        = "tokens"
	FieldPredicates    = "predicates"
)

type contextKey string

const (
	requestIDKey contextKey = "logger_request_id"
	componentKey contextKey = "logger_component"
)

// WithRequestID adds a request ID to the context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		fields = append(fields, FieldRequestID, requestID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns a logger with fields extracted from context.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	registry := translation.NewRegistry(catalog)
//	registry.SetLogger(logger.ComponentLogger("translation"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
