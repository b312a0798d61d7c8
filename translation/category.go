// Package translation resolves free-text search keys against a catalog of
// translated domain concepts (materials, enchantments, potion effects, ...).
//
// The Registry is the only seam between the query parser and the catalog:
// it answers Search with every matching entry, in catalog order, plus a
// signal telling whether the query used the wildcard syllable.
package translation

// Category is the kind of domain concept a catalog entry names.
type Category string

const (
	CategoryMaterial        Category = "material"
	CategoryEnchantment     Category = "enchantment"
	CategoryPotionEffect    Category = "potion_effect"
	CategoryDeterioration   Category = "deterioration"
	CategoryMusicInstrument Category = "music_instrument"
)

// KnownCategories lists every category predicates can be built for
var KnownCategories = []Category{
	CategoryMaterial,
	CategoryEnchantment,
	CategoryPotionEffect,
	CategoryDeterioration,
	CategoryMusicInstrument,
}

// IsKnown reports whether the category is one predicates can be built for.
// Catalogs may carry other categories; the parser rejects them on use.
func (c Category) IsKnown() bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

// SupportsWildcard reports whether a wildcard search may resolve to a set of
// this category. Only materials qualify, any other category would make the
// resulting predicate ambiguous.
func (c Category) SupportsWildcard() bool {
	return c == CategoryMaterial
}

// Translatable identifies a domain concept, e.g. {material, minecraft:diamond_sword}
type Translatable struct {
	Category Category
	Key      string
}

// Translated is a Translatable together with its human-readable label.
// Registries hand out pointers to their own Translated values; callers
// must treat them as read-only.
type Translated struct {
	Translatable

	// Translation is the label as written in the catalog, e.g. "Diamond Sword"
	Translation string

	// NormalizedTranslation is the label in search form, e.g. "diamond-sword"
	NormalizedTranslation string

	syllables []string
}

// NewTranslated builds a Translated value with its normalized label
func NewTranslated(category Category, key, label string) *Translated {
	normalized := Normalize(label)
	return &Translated{
		Translatable:          Translatable{Category: category, Key: key},
		Translation:           label,
		NormalizedTranslation: normalized,
		syllables:             Syllables(normalized),
	}
}
