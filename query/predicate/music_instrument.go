package predicate

import (
	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

// MusicInstrument matches goat horns playing the given instrument
type MusicInstrument struct {
	Token      *token.UnquotedString
	Translated *translation.Translated
}

func (p *MusicInstrument) Test(it *item.Item) bool {
	return it.Instrument != "" && it.Instrument == p.Translated.Key
}

func (p *MusicInstrument) Stringify(useTokens bool) string {
	return head(p.Token, p.Translated, useTokens)
}
