package parser

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/itemquery/errors"
)

// ErrorContext selects how a parse error is rendered
type ErrorContext string

const (
	// ErrorContextTerminal renders with ANSI colors
	ErrorContextTerminal ErrorContext = "terminal"
	// ErrorContextPlain renders without ANSI codes (logs, JSON output, REPL history)
	ErrorContextPlain ErrorContext = "plain"
)

// ParseConflict names the grammar rule an argument violated
type ParseConflict string

const (
	// Tokenizer
	ConflictMalformedStringArgument  ParseConflict = "malformed_string_argument"
	ConflictMissingStringTermination ParseConflict = "missing_string_termination"
	ConflictExpectedInteger          ParseConflict = "expected_integer"

	// Predicate parser
	ConflictExpectedSearchPattern          ParseConflict = "expected_search_pattern"
	ConflictMultipleSearchPatternWildcards ParseConflict = "multiple_search_pattern_wildcards"
	ConflictNoSearchMatch                  ParseConflict = "no_search_match"
	ConflictDoesNotAcceptTimeNotation      ParseConflict = "does_not_accept_time_notation"
	ConflictUnimplementedTranslatable      ParseConflict = "unimplemented_translatable"
)

// Message returns a short human-readable description of the conflict
func (c ParseConflict) Message() string {
	switch c {
	case ConflictMalformedStringArgument:
		return "misplaced double quote"
	case ConflictMissingStringTermination:
		return "quoted string is never closed"
	case ConflictExpectedInteger:
		return "expected an integer"
	case ConflictExpectedSearchPattern:
		return "expected a search pattern"
	case ConflictMultipleSearchPatternWildcards:
		return "only one wildcard is allowed per search pattern"
	case ConflictNoSearchMatch:
		return "nothing matches this search pattern"
	case ConflictDoesNotAcceptTimeNotation:
		return "time notation is not accepted here"
	case ConflictUnimplementedTranslatable:
		return "search matched a concept that cannot be queried yet"
	default:
		return string(c)
	}
}

// hint suggests how the user can fix the argument
func (c ParseConflict) hint() string {
	switch c {
	case ConflictMalformedStringArgument:
		return `quotes may only open or close a phrase, e.g. "lore text"`
	case ConflictMissingStringTermination:
		return `add a closing " to the phrase`
	case ConflictExpectedInteger:
		return "integers are decimal (90) or time notation (1:30)"
	case ConflictExpectedSearchPattern:
		return "integers and parentheses must follow a search pattern that accepts them"
	case ConflictMultipleSearchPatternWildcards:
		return "use ? in a single syllable only, e.g. ?-sword"
	case ConflictDoesNotAcceptTimeNotation:
		return "write a plain number, e.g. 3 instead of 0:03"
	default:
		return ""
	}
}

// ArgumentParseError reports the first raw argument that violated the grammar.
// It carries no payload beyond the argument index and the conflict.
type ArgumentParseError struct {
	ArgumentIndex int
	Conflict      ParseConflict
}

func newArgumentParseError(index int, conflict ParseConflict) *ArgumentParseError {
	return &ArgumentParseError{ArgumentIndex: index, Conflict: conflict}
}

// Error implements error interface
func (e *ArgumentParseError) Error() string {
	return fmt.Sprintf("%s (argument %d)", e.Conflict.Message(), e.ArgumentIndex)
}

// AsArgumentParseError finds an *ArgumentParseError in err's chain
func AsArgumentParseError(err error) (*ArgumentParseError, bool) {
	var parseErr *ArgumentParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

// FormatError renders the error against the arguments it was raised for,
// marking the offending one. Suggestions are appended as possible fixes.
func (e *ArgumentParseError) FormatError(ctx ErrorContext, args []string, suggestions ...string) string {
	if ctx == ErrorContextPlain {
		return e.formatPlainError(args, suggestions)
	}
	return e.formatTerminalError(args, suggestions)
}

// formatPlainError creates a one-line error for logs and non-tty output
func (e *ArgumentParseError) formatPlainError(args []string, suggestions []string) string {
	msg := e.Conflict.Message()
	if e.ArgumentIndex >= 0 && e.ArgumentIndex < len(args) {
		msg += fmt.Sprintf(" (at argument %d/%d: %q)", e.ArgumentIndex+1, len(args), args[e.ArgumentIndex])
	}
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(". Did you mean: %s", strings.Join(suggestions, ", "))
	}
	return msg
}

// formatTerminalError creates a colored error showing the whole command line
func (e *ArgumentParseError) formatTerminalError(args []string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(pterm.Red(e.Conflict.Message()))

	if e.ArgumentIndex >= 0 && e.ArgumentIndex < len(args) {
		marked := make([]string, len(args))
		for i, arg := range args {
			if i == e.ArgumentIndex {
				marked[i] = pterm.Bold.Sprint(pterm.Red(displayArgument(arg)))
				continue
			}
			marked[i] = pterm.Gray(displayArgument(arg))
		}

		b.WriteString(fmt.Sprintf("\n\n%s", pterm.LightCyan("Context:")))
		b.WriteString(fmt.Sprintf("\n  %s %d/%d", pterm.Yellow("Argument:"), e.ArgumentIndex+1, len(args)))
		b.WriteString(fmt.Sprintf("\n  %s %s", pterm.Yellow("Query:"), strings.Join(marked, " ")))
	}

	if hint := e.Conflict.hint(); hint != "" {
		b.WriteString(fmt.Sprintf("\n\n%s %s", pterm.LightCyan("Hint:"), hint))
	}

	if len(suggestions) > 0 {
		b.WriteString(fmt.Sprintf("\n\n%s", pterm.Green("Did you mean:")))
		for _, suggestion := range suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// displayArgument makes empty arguments visible
func displayArgument(arg string) string {
	if arg == "" {
		return `''`
	}
	return arg
}
