package translation

import (
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// WildcardPresence tells the parser how a query used the wildcard syllable
type WildcardPresence int

const (
	// WildcardNone means the query named concepts exactly
	WildcardNone WildcardPresence = iota
	// WildcardPresent means the query contained one wildcard syllable
	WildcardPresent
	// WildcardConflictRepeated means the wildcard syllable appeared more than once
	WildcardConflictRepeated
)

func (w WildcardPresence) String() string {
	switch w {
	case WildcardNone:
		return "none"
	case WildcardPresent:
		return "present"
	case WildcardConflictRepeated:
		return "conflict_occurred_repeatedly"
	default:
		return "unknown"
	}
}

// SearchResult is the registry's answer to one query
type SearchResult struct {
	// Matches holds every matching entry in catalog order
	Matches  []*Translated
	Wildcard WildcardPresence
}

// Registry resolves free-text queries against an in-memory catalog.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	locale  string
	entries []*Translated
	logger  *zap.SugaredLogger
}

// NewRegistry indexes the catalog's entries in order
func NewRegistry(catalog *Catalog) *Registry {
	r := &Registry{}
	if catalog == nil {
		return r
	}

	r.locale = catalog.Locale
	r.entries = make([]*Translated, 0, len(catalog.Entries))
	for _, entry := range catalog.Entries {
		r.entries = append(r.entries, NewTranslated(entry.Category, entry.Key, entry.Label))
	}
	return r
}

// SetLogger sets the logger for debug output
func (r *Registry) SetLogger(logger *zap.SugaredLogger) {
	r.logger = logger
}

// Locale returns the locale the catalog's labels are written in
func (r *Registry) Locale() string {
	return r.locale
}

// Len returns the number of indexed entries
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns the indexed entries in catalog order
func (r *Registry) Entries() []*Translated {
	out := make([]*Translated, len(r.entries))
	copy(out, r.entries)
	return out
}

// Search returns every entry whose label matches query.
//
// The query is normalized and split into syllables. Every syllable except the
// wildcard must be contained in a distinct syllable of the label, in any
// order: "sw-dia" matches "Diamond Sword". The wildcard syllable "?" matches
// nothing by itself, so "?" alone matches every entry and "?-sword" every
// label with a syllable containing "sword".
func (r *Registry) Search(query string) SearchResult {
	start := time.Now()
	result := SearchResult{}

	var patterns []string
	for _, syllable := range Syllables(Normalize(query)) {
		if syllable != WildcardSyllable {
			patterns = append(patterns, syllable)
			continue
		}
		if result.Wildcard == WildcardNone {
			result.Wildcard = WildcardPresent
		} else {
			result.Wildcard = WildcardConflictRepeated
		}
	}

	if result.Wildcard == WildcardConflictRepeated {
		return result
	}

	// A query made only of separators names nothing
	if len(patterns) == 0 && result.Wildcard == WildcardNone {
		return result
	}

	for _, entry := range r.entries {
		if matchSyllables(patterns, entry.syllables) {
			result.Matches = append(result.Matches, entry)
		}
	}

	if r.logger != nil {
		r.logger.Debugw("registry search",
			"query", query,
			"matches", len(result.Matches),
			"wildcard", result.Wildcard.String(),
			"time_us", time.Since(start).Microseconds(),
		)
	}

	return result
}

// matchSyllables assigns each pattern to a distinct label syllable that
// contains it. Labels are a handful of words long, so plain backtracking is fine.
func matchSyllables(patterns, syllables []string) bool {
	if len(patterns) > len(syllables) {
		return false
	}
	used := make([]bool, len(syllables))

	var assign func(i int) bool
	assign = func(i int) bool {
		if i == len(patterns) {
			return true
		}
		for j, syllable := range syllables {
			if used[j] || !strings.Contains(syllable, patterns[i]) {
				continue
			}
			used[j] = true
			if assign(i + 1) {
				return true
			}
			used[j] = false
		}
		return false
	}

	return assign(0)
}

// Suggest returns up to limit normalized labels closest to query by edit
// distance, nearest first. Labels further away than the distance limit for
// their length are left out.
func (r *Registry) Suggest(query string, limit int) []string {
	normalized := Normalize(query)
	if normalized == "" || limit <= 0 {
		return nil
	}

	type candidate struct {
		label    string
		distance int
	}

	seen := make(map[string]bool)
	var candidates []candidate
	for _, entry := range r.entries {
		label := entry.NormalizedTranslation
		if seen[label] {
			continue
		}
		seen[label] = true

		distance := levenshtein.ComputeDistance(normalized, label)
		if distance > suggestionDistanceLimit(len(label)) {
			continue
		}
		candidates = append(candidates, candidate{label: label, distance: distance})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.label)
	}
	return suggestions
}

func suggestionDistanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
