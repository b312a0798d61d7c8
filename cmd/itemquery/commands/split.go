package commands

import (
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/teranos/itemquery/errors"
)

// Ways of splitting a raw query line into arguments
const (
	// SplitGame splits on every single space, like a chat command dispatcher.
	// Quotes are kept and double spaces produce empty arguments.
	SplitGame = "game"

	// SplitShell applies POSIX shell quoting rules, so quotes are removed
	// unless escaped or nested.
	SplitShell = "shell"
)

// splitLine turns a raw query line into the argument array the tokenizer sees
func splitLine(line, mode string) ([]string, error) {
	switch mode {
	case SplitGame, "":
		if line == "" {
			return nil, nil
		}
		return strings.Split(line, " "), nil

	case SplitShell:
		args, err := shellquote.Split(line)
		if err != nil {
			return nil, errors.WithHint(
				errors.Wrap(err, "failed to split query line"),
				"check for an unterminated quote or a trailing backslash",
			)
		}
		return args, nil

	default:
		return nil, errors.Newf("unknown split mode %q (supported: %s, %s)", mode, SplitGame, SplitShell)
	}
}

// queryArgs returns the arguments of a query command, taken either from the
// positional arguments or from --line
func queryArgs(args []string, line, mode string) ([]string, error) {
	if line == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, errors.New("--line cannot be combined with positional query arguments")
	}
	return splitLine(line, mode)
}

// quoteArgs renders an argument array so that empty and spaced arguments
// stay visible
func quoteArgs(args []string) string {
	return shellquote.Join(args...)
}
