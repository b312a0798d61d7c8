package parser

import (
	"math"
	"strings"

	"github.com/teranos/itemquery/query/token"
)

// ParseTokens reconstructs the logical token stream from pre-split arguments.
//
// The shell has already split the query on whitespace, so quoted phrases may
// span several arguments and parentheses may be glued to their neighbours.
// Grammar per argument:
//
//	(foo      opening parenthesis, then foo
//	foo)      foo, then a closing parenthesis
//	"a b"     quoted phrase within one argument
//	"a  b"    quoted phrase spanning arguments, rejoined with single spaces
//	*         integer wildcard
//	90, 1:30  integer, optionally in time notation
//	foo       search pattern
//
// The closing parenthesis split off an argument is held back for one
// iteration so it lands after the token the rest of that argument produced.
func ParseTokens(args []string) ([]token.Token, error) {
	result := make([]token.Token, 0, len(args))

	// One-slot pending output, flushed at the top of the next iteration
	var deferred token.Token

	// Open multi-argument phrase; stringBegin is -1 when none is open
	stringBegin := -1
	var contents strings.Builder

	closeString := func() {
		result = append(result, &token.QuotedString{Index: stringBegin, Value: contents.String()})
		stringBegin = -1
		contents.Reset()
	}

	for index, arg := range args {
		if deferred != nil {
			result = append(result, deferred)
			deferred = nil
		}

		if arg == "" {
			// Two adjacent spaces inside a phrase: kept as text so the phrase
			// reads as typed and no token lands between its quotes
			if stringBegin >= 0 {
				contents.WriteByte(' ')
				continue
			}
			result = append(result, &token.UnquotedString{Index: index})
			continue
		}

		if arg[0] == '(' && stringBegin < 0 {
			result = append(result, &token.Parenthesis{Index: index, IsOpening: true})
			if len(arg) == 1 {
				continue
			}
			arg = arg[1:]
		}

		// Inside an open phrase a ) is text, unless it follows the closing quote
		if arg[len(arg)-1] == ')' && (stringBegin < 0 || (len(arg) >= 2 && arg[len(arg)-2] == '"')) {
			deferred = &token.Parenthesis{Index: index, IsOpening: false}
			if len(arg) == 1 {
				continue
			}
			arg = arg[:len(arg)-1]
		}

		first, last := arg[0], arg[len(arg)-1]

		if first == '"' {
			termination := strings.IndexByte(arg[1:], '"')

			// Opens and closes within this argument
			if termination >= 0 {
				if termination+2 != len(arg) {
					return nil, newArgumentParseError(index, ConflictMalformedStringArgument)
				}
				result = append(result, &token.QuotedString{Index: index, Value: arg[1 : len(arg)-1]})
				continue
			}

			if stringBegin >= 0 {
				// A lone quote closes a phrase ending in a space
				if len(arg) != 1 {
					return nil, newArgumentParseError(index, ConflictMalformedStringArgument)
				}
				contents.WriteByte(' ')
				closeString()
				continue
			}

			stringBegin = index
			// A lone quote opens a phrase starting with a space
			contents.WriteString(arg[1:])
			continue
		}

		if last == '"' {
			if stringBegin < 0 {
				return nil, newArgumentParseError(index, ConflictMalformedStringArgument)
			}
			contents.WriteByte(' ')
			contents.WriteString(arg[:len(arg)-1])
			closeString()
			continue
		}

		if stringBegin >= 0 {
			contents.WriteByte(' ')
			contents.WriteString(arg)
			continue
		}

		if arg == token.WildcardMarker {
			result = append(result, token.NewWildcard(index))
			continue
		}

		// No catalog label starts with a digit
		if isDigit(first) {
			integer, ok := parseIntegerToken(arg, index)
			if !ok {
				return nil, newArgumentParseError(index, ConflictExpectedInteger)
			}
			result = append(result, integer)
			continue
		}

		// First and last character were checked above
		if len(arg) > 2 && strings.IndexByte(arg[1:len(arg)-1], '"') >= 0 {
			return nil, newArgumentParseError(index, ConflictMalformedStringArgument)
		}

		result = append(result, &token.UnquotedString{Index: index, Value: arg})
	}

	if stringBegin >= 0 {
		return nil, newArgumentParseError(stringBegin, ConflictMissingStringTermination)
	}

	if deferred != nil {
		result = append(result, deferred)
	}

	return result, nil
}

// parseIntegerToken scans right to left, collecting decimal digits into
// base-60 groups separated by colons: 90, 1:30 and 0:01:30 are all 90.
// Values that do not fit into 32 bits are rejected.
func parseIntegerToken(arg string, index int) (*token.Integer, bool) {
	var (
		total      int64
		group      int64
		digitPower int64 = 1
		groupPower int64 = 1
		groups     int
	)

	// Powers stop growing past MaxInt32; any non-zero digit there overflows
	for i := len(arg) - 1; i >= 0; i-- {
		c := arg[i]

		if c == ':' {
			total += group * groupPower
			group = 0
			digitPower = 1
			if groupPower <= math.MaxInt32 {
				groupPower *= 60
			}
			groups++
			continue
		}

		if !isDigit(c) {
			return nil, false
		}

		if c != '0' {
			if digitPower > math.MaxInt32 || groupPower > math.MaxInt32 {
				return nil, false
			}
			group += int64(c-'0') * digitPower
			if group > math.MaxInt32 || total+group*groupPower > math.MaxInt32 {
				return nil, false
			}
		}
		if digitPower <= math.MaxInt32 {
			digitPower *= 10
		}
	}

	total += group * groupPower

	if groups > 0 {
		return token.NewTimeInteger(index, int(total)), true
	}
	return token.NewInteger(index, int(total)), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
