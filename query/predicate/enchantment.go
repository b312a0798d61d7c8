package predicate

import (
	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

// Enchantment matches items carrying the enchantment, optionally at an exact level
type Enchantment struct {
	Token      *token.UnquotedString
	Translated *translation.Translated
	Level      *token.Integer
}

func (p *Enchantment) Test(it *item.Item) bool {
	level, ok := it.EnchantmentLevel(p.Translated.Key)
	if !ok {
		return false
	}
	if want, given := argumentValue(p.Level); given {
		return level == want
	}
	return true
}

func (p *Enchantment) Stringify(useTokens bool) string {
	return withArguments(head(p.Token, p.Translated, useTokens), useTokens, p.Level)
}
