package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/teranos/itemquery/errors"
	"github.com/teranos/itemquery/logger"
	"github.com/teranos/itemquery/query/parser"
	"github.com/teranos/itemquery/translation"
)

// QueryError is a parse failure together with the arguments it points into
type QueryError struct {
	Args        []string
	Suggestions []string
	err         error
}

func (e *QueryError) Error() string { return e.err.Error() }
func (e *QueryError) Unwrap() error { return e.err }

// Format renders the failure with the offending argument highlighted
func (e *QueryError) Format(ctx parser.ErrorContext) string {
	pe, ok := parser.AsArgumentParseError(e.err)
	if !ok {
		return e.err.Error()
	}
	return pe.FormatError(ctx, e.Args, e.Suggestions...)
}

// queryFailure attaches the raw arguments to a parse error and, when a search
// pattern matched nothing, the closest catalog labels as a hint
func queryFailure(err error, args []string, registry *translation.Registry, limit int) error {
	pe, ok := parser.AsArgumentParseError(err)
	if !ok {
		return err
	}

	logger.Debugw("Query rejected",
		logger.FieldArgs, quoteArgs(args),
		logger.FieldArgumentIndex, pe.ArgumentIndex,
		logger.FieldConflict, string(pe.Conflict))

	qe := &QueryError{Args: args, err: err}
	if pe.Conflict != parser.ConflictNoSearchMatch || registry == nil {
		return qe
	}
	if pe.ArgumentIndex < 0 || pe.ArgumentIndex >= len(args) {
		return qe
	}

	qe.Suggestions = registry.Suggest(args[pe.ArgumentIndex], limit)
	if len(qe.Suggestions) > 0 {
		qe.err = errors.WithHintf(err, "did you mean: %s", strings.Join(qe.Suggestions, ", "))
	}
	return qe
}

// errorContext picks colored output only for an interactive terminal
func errorContext(f *os.File) parser.ErrorContext {
	if logger.Theme() == logger.ThemeNone {
		return parser.ErrorContextPlain
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return parser.ErrorContextTerminal
	}
	return parser.ErrorContextPlain
}

// PrintError reports a command failure on w. Query errors point at the
// offending argument; other errors are printed with their hints.
func PrintError(w io.Writer, ctx parser.ErrorContext, err error) {
	var qe *QueryError
	if errors.As(err, &qe) {
		fmt.Fprintln(w, qe.Format(ctx))
		return
	}

	if ctx == parser.ErrorContextTerminal {
		fmt.Fprintln(w, pterm.Red("Error: ")+err.Error())
	} else {
		fmt.Fprintln(w, "Error: "+err.Error())
	}
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, "Hint: "+hint)
	}
}

// ReportError prints err to stderr in the context stderr supports
func ReportError(err error) {
	PrintError(os.Stderr, errorContext(os.Stderr), err)
}
