package predicate

import (
	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

// PotionEffect matches items with an effect of the given type. Amplifier and
// Duration (seconds) narrow the match when given.
type PotionEffect struct {
	Token      *token.UnquotedString
	Translated *translation.Translated
	Amplifier  *token.Integer
	Duration   *token.Integer
}

func (p *PotionEffect) Test(it *item.Item) bool {
	amplifier, checkAmplifier := argumentValue(p.Amplifier)
	duration, checkDuration := argumentValue(p.Duration)

	for _, effect := range it.EffectsOf(p.Translated.Key) {
		if checkAmplifier && effect.Amplifier != amplifier {
			continue
		}
		if checkDuration && effect.DurationSeconds != duration {
			continue
		}
		return true
	}
	return false
}

func (p *PotionEffect) Stringify(useTokens bool) string {
	return withArguments(head(p.Token, p.Translated, useTokens), useTokens, p.Amplifier, p.Duration)
}
