// Package item models the game items that query predicates are tested against.
package item

// PotionEffect is one effect carried by a potion-like item
type PotionEffect struct {
	Type            string `yaml:"type" json:"type"`
	Amplifier       int    `yaml:"amplifier" json:"amplifier"`
	DurationSeconds int    `yaml:"duration_seconds" json:"duration_seconds"`
}

// Item is a snapshot of one item stack.
// Keys use the namespaced form of the catalog, e.g. "minecraft:diamond_sword".
type Item struct {
	Material      string         `yaml:"material" json:"material"`
	Amount        int            `yaml:"amount" json:"amount"`
	DisplayName   string         `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Lore          []string       `yaml:"lore,omitempty" json:"lore,omitempty"`
	Pages         []string       `yaml:"pages,omitempty" json:"pages,omitempty"`
	Enchantments  map[string]int `yaml:"enchantments,omitempty" json:"enchantments,omitempty"`
	PotionEffects []PotionEffect `yaml:"potion_effects,omitempty" json:"potion_effects,omitempty"`
	Damage        int            `yaml:"damage,omitempty" json:"damage,omitempty"`
	MaxDurability int            `yaml:"max_durability,omitempty" json:"max_durability,omitempty"`
	Instrument    string         `yaml:"instrument,omitempty" json:"instrument,omitempty"`
}

// EnchantmentLevel returns the level of the enchantment and whether the item has it
func (i *Item) EnchantmentLevel(key string) (int, bool) {
	level, ok := i.Enchantments[key]
	return level, ok
}

// EffectsOf returns every potion effect of the given type
func (i *Item) EffectsOf(effectType string) []PotionEffect {
	var effects []PotionEffect
	for _, effect := range i.PotionEffects {
		if effect.Type == effectType {
			effects = append(effects, effect)
		}
	}
	return effects
}

// HasDurability reports whether the item can take damage
func (i *Item) HasDurability() bool {
	return i.MaxDurability > 0
}

// DeteriorationPercent returns how worn the item is, 0 for pristine and 100
// for about to break. Items without durability report 0 and false.
func (i *Item) DeteriorationPercent() (int, bool) {
	if !i.HasDurability() {
		return 0, false
	}
	damage := i.Damage
	if damage < 0 {
		damage = 0
	}
	if damage > i.MaxDurability {
		damage = i.MaxDurability
	}
	return damage * 100 / i.MaxDurability, true
}

// Texts returns every piece of free text on the item: display name, lore
// lines and book pages
func (i *Item) Texts() []string {
	texts := make([]string, 0, 1+len(i.Lore)+len(i.Pages))
	if i.DisplayName != "" {
		texts = append(texts, i.DisplayName)
	}
	texts = append(texts, i.Lore...)
	texts = append(texts, i.Pages...)
	return texts
}
