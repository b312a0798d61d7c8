// Package parser turns raw command-line arguments into item predicates.
//
// Parsing runs in two stages. ParseTokens rebuilds the logical tokens the
// shell's whitespace splitting destroyed; ParsePredicates resolves search
// patterns against a Registry and attaches trailing integer arguments.
// Both stages fail fast with an *ArgumentParseError pointing at the
// offending raw argument.
package parser

import (
	"unicode/utf8"

	"github.com/teranos/itemquery/query/predicate"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

// Registry resolves a search pattern to catalog concepts.
// *translation.Registry satisfies it; tests supply stubs.
type Registry interface {
	Search(query string) translation.SearchResult
}

// Parse tokenizes args and builds the predicates they describe
func Parse(args []string, registry Registry) ([]predicate.ItemPredicate, error) {
	tokens, err := ParseTokens(args)
	if err != nil {
		return nil, err
	}
	return ParsePredicates(tokens, registry)
}

// ParsePredicates consumes the token stream front to back.
//
// Quoted strings become text searches. Unquoted strings are looked up in the
// registry; the shortest-labelled match decides the predicate kind, which
// then takes up to its fixed number of directly following integers.
// Grouping is left to the caller: a parenthesis, like an integer no
// predicate took, fails as ExpectedSearchPattern. The input slice is not
// modified.
func ParsePredicates(tokens []token.Token, registry Registry) ([]predicate.ItemPredicate, error) {
	var result []predicate.ItemPredicate
	queue := &tokenQueue{tokens: tokens}

	for !queue.empty() {
		current := queue.pop()

		if quoted, ok := current.(*token.QuotedString); ok {
			result = append(result, predicate.NewTextSearch(quoted))
			continue
		}

		search, ok := current.(*token.UnquotedString)
		if !ok {
			return nil, newArgumentParseError(current.ArgumentIndex(), ConflictExpectedSearchPattern)
		}

		// Empty argument
		if search.Value == "" {
			continue
		}

		found := registry.Search(search.Value)

		if found.Wildcard == translation.WildcardConflictRepeated {
			return nil, newArgumentParseError(search.Index, ConflictMultipleSearchPatternWildcards)
		}

		// Only materials can be matched as a set; other categories are dropped
		if found.Wildcard == translation.WildcardPresent {
			var materials []*translation.Translated
			for _, match := range found.Matches {
				if match.Category.SupportsWildcard() {
					materials = append(materials, match)
				}
			}
			if len(materials) == 0 {
				return nil, newArgumentParseError(search.Index, ConflictNoSearchMatch)
			}
			result = append(result, predicate.NewMaterialSet(search, materials))
			continue
		}

		match := shortestMatch(found.Matches)
		if match == nil {
			return nil, newArgumentParseError(search.Index, ConflictNoSearchMatch)
		}

		built, err := buildPredicate(search, match, queue)
		if err != nil {
			return nil, err
		}
		result = append(result, built)
	}

	return result, nil
}

// buildPredicate dispatches on the match's category and consumes the
// category's trailing integer arguments
func buildPredicate(search *token.UnquotedString, match *translation.Translated, queue *tokenQueue) (predicate.ItemPredicate, error) {
	switch match.Category {
	case translation.CategoryMaterial:
		return predicate.NewMaterial(search, match), nil

	case translation.CategoryEnchantment:
		level := queue.popInteger()
		if err := rejectTimeNotation(level); err != nil {
			return nil, err
		}
		return &predicate.Enchantment{Token: search, Translated: match, Level: level}, nil

	case translation.CategoryPotionEffect:
		amplifier := queue.popInteger()
		if err := rejectTimeNotation(amplifier); err != nil {
			return nil, err
		}
		duration := queue.popInteger()
		return &predicate.PotionEffect{Token: search, Translated: match, Amplifier: amplifier, Duration: duration}, nil

	case translation.CategoryDeterioration:
		lower := queue.popInteger()
		if err := rejectTimeNotation(lower); err != nil {
			return nil, err
		}
		upper := queue.popInteger()
		if err := rejectTimeNotation(upper); err != nil {
			return nil, err
		}
		return &predicate.Deterioration{Token: search, Translated: match, Min: lower, Max: upper}, nil

	case translation.CategoryMusicInstrument:
		return &predicate.MusicInstrument{Token: search, Translated: match}, nil

	default:
		return nil, newArgumentParseError(search.Index, ConflictUnimplementedTranslatable)
	}
}

func rejectTimeNotation(arg *token.Integer) error {
	if arg != nil && arg.WasTimeNotation {
		return newArgumentParseError(arg.Index, ConflictDoesNotAcceptTimeNotation)
	}
	return nil
}

// shortestMatch picks the match with the shortest label, counted in
// characters (runes, so a symbol outside the BMP counts once). The first
// one wins ties. Returns nil for no matches.
func shortestMatch(matches []*translation.Translated) *translation.Translated {
	var shortest *translation.Translated
	shortestLength := 0

	for _, match := range matches {
		length := utf8.RuneCountInString(match.Translation)
		if shortest == nil || length < shortestLength {
			shortest = match
			shortestLength = length
		}
	}
	return shortest
}

// tokenQueue is an index cursor over an immutable token slice
type tokenQueue struct {
	tokens []token.Token
	next   int
}

func (q *tokenQueue) empty() bool {
	return q.next >= len(q.tokens)
}

func (q *tokenQueue) pop() token.Token {
	t := q.tokens[q.next]
	q.next++
	return t
}

// popInteger consumes the next token only if it is an integer
func (q *tokenQueue) popInteger() *token.Integer {
	if q.empty() {
		return nil
	}
	integer, ok := q.tokens[q.next].(*token.Integer)
	if !ok {
		return nil
	}
	q.next++
	return integer
}
