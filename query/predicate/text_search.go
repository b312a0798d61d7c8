package predicate

import (
	"strings"

	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/query/token"
)

// TextSearch matches items whose display name, lore or book pages contain
// the phrase, ignoring case. It never consults the registry.
type TextSearch struct {
	Token *token.QuotedString
}

// NewTextSearch builds a text search over the quoted token's value
func NewTextSearch(tok *token.QuotedString) *TextSearch {
	return &TextSearch{Token: tok}
}

func (p *TextSearch) Test(it *item.Item) bool {
	needle := strings.ToLower(p.Token.Value)
	for _, text := range it.Texts() {
		if strings.Contains(strings.ToLower(text), needle) {
			return true
		}
	}
	return false
}

func (p *TextSearch) Stringify(bool) string {
	return p.Token.Stringify()
}
