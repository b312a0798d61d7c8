package predicate

import (
	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

// Material matches items made of one of the listed materials.
// A plain search resolves to exactly one material and sets Translated;
// a wildcard search carries every matching material and leaves it nil.
type Material struct {
	Token      *token.UnquotedString
	Translated *translation.Translated
	Materials  []*translation.Translated
}

// NewMaterial builds a predicate for a single resolved material
func NewMaterial(search *token.UnquotedString, translated *translation.Translated) *Material {
	return &Material{
		Token:      search,
		Translated: translated,
		Materials:  []*translation.Translated{translated},
	}
}

// NewMaterialSet builds a predicate for the materials a wildcard search matched
func NewMaterialSet(search *token.UnquotedString, materials []*translation.Translated) *Material {
	return &Material{Token: search, Materials: materials}
}

// IsWildcard reports whether the predicate came from a wildcard search
func (p *Material) IsWildcard() bool {
	return p.Translated == nil
}

func (p *Material) Test(it *item.Item) bool {
	for _, material := range p.Materials {
		if material.Key == it.Material {
			return true
		}
	}
	return false
}

func (p *Material) Stringify(useTokens bool) string {
	return head(p.Token, p.Translated, useTokens)
}
