package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{name: "JSON output mode", jsonOutput: true, verbosity: 0},
		{name: "Console output mode", jsonOutput: false, verbosity: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			if err := Initialize(tt.jsonOutput, tt.verbosity); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if Logger == nil {
				t.Fatal("Initialize() did not set global Logger")
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{9, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		verbosity int
		category  OutputCategory
		want      bool
	}{
		{VerbosityUser, OutputTokens, false},
		{VerbosityInfo, OutputTokens, false},
		{VerbosityDebug, OutputTokens, true},
		{VerbosityDebug, OutputSearchResults, false},
		{VerbosityTrace, OutputSearchResults, true},
		{5, OutputSearchResults, true},
		{VerbosityDebug, OutputCategory(99), false},
		{VerbosityTrace, OutputCategory(99), true},
	}

	for _, tt := range tests {
		if got := ShouldOutput(tt.verbosity, tt.category); got != tt.want {
			t.Errorf("ShouldOutput(%d, %s) = %v, want %v",
				tt.verbosity, CategoryName(tt.category), got, tt.want)
		}
	}
	if got := CategoryName(OutputCategory(99)); got != "unknown" {
		t.Errorf("CategoryName(99) = %q", got)
	}
}

func TestFieldsFromContext(t *testing.T) {
	ctx := context.Background()
	if fields := FieldsFromContext(ctx); len(fields) != 0 {
		t.Errorf("expected no fields for empty context, got %v", fields)
	}

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithComponent(ctx, "parser")

	fields := FieldsFromContext(ctx)
	want := []interface{}{FieldRequestID, "req-1", FieldComponent, "parser"}
	if len(fields) != len(want) {
		t.Fatalf("FieldsFromContext() = %v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %v, want %v", i, fields[i], want[i])
		}
	}
}

func TestLoggerFromContextCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := Logger
	Logger = zap.New(core).Sugar()
	defer func() { Logger = previous }()

	ctx := WithRequestID(context.Background(), "abc")
	LoggerFromContext(ctx).Debugw("parsed query", FieldCount, 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields[FieldRequestID] != "abc" {
		t.Errorf("request_id = %v, want abc", fields[FieldRequestID])
	}
	if fields[FieldCount] != int64(3) {
		t.Errorf("count = %v, want 3", fields[FieldCount])
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(ThemeEverforest)

	SetTheme(ThemeGruvbox)
	if got := Theme(); got != ThemeGruvbox {
		t.Errorf("Theme() = %q, want gruvbox", got)
	}

	SetTheme("solarized")
	if got := Theme(); got != ThemeGruvbox {
		t.Errorf("unknown theme replaced active one: %q", got)
	}

	SetTheme(ThemeNone)
	if got := Theme(); got != ThemeNone {
		t.Errorf("Theme() = %q, want none", got)
	}
}
