// Package predicate holds the typed conditions a query compiles to.
//
// Every predicate keeps the token it was built from, so a query can be
// echoed back as typed (Stringify(true)) or in canonical catalog form
// (Stringify(false)).
package predicate

import (
	"strconv"
	"strings"

	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

// ItemPredicate is one condition on an item
type ItemPredicate interface {
	// Test reports whether the item satisfies the condition
	Test(it *item.Item) bool

	// Stringify renders the predicate. With useTokens the search key is
	// rendered as the user typed it, otherwise as the normalized catalog label.
	Stringify(useTokens bool) string
}

// Conjunction is satisfied when every predicate is. An empty conjunction
// matches every item.
type Conjunction []ItemPredicate

func (c Conjunction) Test(it *item.Item) bool {
	for _, p := range c {
		if !p.Test(it) {
			return false
		}
	}
	return true
}

func (c Conjunction) Stringify(useTokens bool) string {
	parts := make([]string, 0, len(c))
	for _, p := range c {
		parts = append(parts, p.Stringify(useTokens))
	}
	return strings.Join(parts, " ")
}

// Filter returns the items satisfying the conjunction, in order
func (c Conjunction) Filter(items []item.Item) []item.Item {
	var matched []item.Item
	for i := range items {
		if c.Test(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched
}

// head renders the search key part of a registry-backed predicate
func head(search *token.UnquotedString, translated *translation.Translated, useTokens bool) string {
	if useTokens || translated == nil {
		return search.Stringify()
	}
	return translated.NormalizedTranslation
}

// withArguments appends the trailing integer arguments that were given.
// With useTokens they keep their time notation, otherwise they render as
// plain values; the wildcard is * either way.
func withArguments(head string, useTokens bool, args ...*token.Integer) string {
	var b strings.Builder
	b.WriteString(head)
	for _, arg := range args {
		if arg == nil {
			continue
		}
		b.WriteByte(' ')
		if useTokens || arg.Value == nil {
			b.WriteString(arg.Stringify())
			continue
		}
		b.WriteString(strconv.Itoa(*arg.Value))
	}
	return b.String()
}

// argumentValue returns the integer argument's value; ok is false when the
// argument was omitted or given as the wildcard, meaning "any".
func argumentValue(arg *token.Integer) (value int, ok bool) {
	if arg == nil || arg.Value == nil {
		return 0, false
	}
	return *arg.Value, true
}
