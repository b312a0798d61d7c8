package predicate

import (
	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

// Deterioration matches damageable items whose wear, in percent of their
// durability, lies within [Min, Max]. Omitted bounds default to 0 and 100.
type Deterioration struct {
	Token      *token.UnquotedString
	Translated *translation.Translated
	Min        *token.Integer
	Max        *token.Integer
}

func (p *Deterioration) Test(it *item.Item) bool {
	percent, ok := it.DeteriorationPercent()
	if !ok {
		return false
	}

	lower, given := argumentValue(p.Min)
	if !given {
		lower = 0
	}
	upper, given := argumentValue(p.Max)
	if !given {
		upper = 100
	}

	return percent >= lower && percent <= upper
}

func (p *Deterioration) Stringify(useTokens bool) string {
	return withArguments(head(p.Token, p.Translated, useTokens), useTokens, p.Min, p.Max)
}
