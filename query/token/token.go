// Package token defines the tokens reconstructed from a command's argument array.
//
// Every token remembers the index of the raw argument it came from so that
// parse errors can point back at what the user typed.
package token

import (
	"strconv"
	"strings"
)

// Token is one classified unit of the logical argument stream.
// The set of implementations is closed: *Parenthesis, *QuotedString,
// *UnquotedString and *Integer.
type Token interface {
	// ArgumentIndex is the 0-based index of the originating raw argument
	ArgumentIndex() int

	// Stringify renders the token back into command-line form
	Stringify() string

	isToken()
}

// Parenthesis is an opaque grouping marker, passed through to the caller.
type Parenthesis struct {
	Index     int
	IsOpening bool
}

// QuotedString is a literal search phrase that never reaches the registry.
type QuotedString struct {
	Index int
	Value string
}

// UnquotedString is a free-text search key. An empty value means "skip".
type UnquotedString struct {
	Index int
	Value string
}

// Integer is a numeric argument. Value is nil only for the bare wildcard marker.
type Integer struct {
	Index           int
	Value           *int
	WasTimeNotation bool
}

func (t *Parenthesis) ArgumentIndex() int    { return t.Index }
func (t *QuotedString) ArgumentIndex() int   { return t.Index }
func (t *UnquotedString) ArgumentIndex() int { return t.Index }
func (t *Integer) ArgumentIndex() int        { return t.Index }

func (*Parenthesis) isToken()    {}
func (*QuotedString) isToken()   {}
func (*UnquotedString) isToken() {}
func (*Integer) isToken()        {}

func (t *Parenthesis) Stringify() string {
	if t.IsOpening {
		return "("
	}
	return ")"
}

func (t *QuotedString) Stringify() string {
	return `"` + t.Value + `"`
}

func (t *UnquotedString) Stringify() string {
	return t.Value
}

// Stringify renders the wildcard as "*" and time notation back into
// colon-separated base-60 groups, so 90 typed as "1:30" stays "1:30".
func (t *Integer) Stringify() string {
	if t.Value == nil {
		return WildcardMarker
	}
	if !t.WasTimeNotation {
		return strconv.Itoa(*t.Value)
	}
	return FormatTimeNotation(*t.Value)
}

// IsWildcard reports whether the integer was written as the bare wildcard marker
func (t *Integer) IsWildcard() bool {
	return t.Value == nil
}

// WildcardMarker is the argument that stands for "any integer"
const WildcardMarker = "*"

// NewInteger creates a plain decimal integer token
func NewInteger(index, value int) *Integer {
	return &Integer{Index: index, Value: &value}
}

// NewTimeInteger creates an integer token that was written in time notation
func NewTimeInteger(index, value int) *Integer {
	return &Integer{Index: index, Value: &value, WasTimeNotation: true}
}

// NewWildcard creates the wildcard integer token
func NewWildcard(index int) *Integer {
	return &Integer{Index: index}
}

// FormatTimeNotation renders a second count as m:ss or h:mm:ss
func FormatTimeNotation(seconds int) string {
	if seconds < 0 {
		return "-" + FormatTimeNotation(-seconds)
	}

	// At least one colon, otherwise the notation is lost
	groups := []int{seconds % 60}
	seconds /= 60
	for seconds >= 60 {
		groups = append(groups, seconds%60)
		seconds /= 60
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(seconds))
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteByte(':')
		if groups[i] < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.Itoa(groups[i]))
	}
	return b.String()
}

// Join stringifies a token sequence separated by spaces
func Join(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.Stringify())
	}
	return strings.Join(parts, " ")
}
