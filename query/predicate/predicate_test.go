package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

var (
	diamondSword = translation.NewTranslated(translation.CategoryMaterial, "minecraft:diamond_sword", "Diamond Sword")
	ironSword    = translation.NewTranslated(translation.CategoryMaterial, "minecraft:iron_sword", "Iron Sword")
	sharpness    = translation.NewTranslated(translation.CategoryEnchantment, "minecraft:sharpness", "Sharpness")
	speed        = translation.NewTranslated(translation.CategoryPotionEffect, "minecraft:speed", "Speed")
	wear         = translation.NewTranslated(translation.CategoryDeterioration, "itemquery:deterioration", "Deterioration")
	ponder       = translation.NewTranslated(translation.CategoryMusicInstrument, "minecraft:ponder_goat_horn", "Ponder")
)

func search(value string) *token.UnquotedString {
	return &token.UnquotedString{Value: value}
}

func TestTextSearch(t *testing.T) {
	p := NewTextSearch(&token.QuotedString{Value: "Stone"})

	assert.True(t, p.Test(&item.Item{DisplayName: "Pulled from the stone"}))
	assert.True(t, p.Test(&item.Item{Lore: []string{"first", "STONE cold"}}))
	assert.True(t, p.Test(&item.Item{Pages: []string{"a stone page"}}))
	assert.False(t, p.Test(&item.Item{Material: "minecraft:stone"}), "material keys are not text")

	assert.Equal(t, `"Stone"`, p.Stringify(true))
	assert.Equal(t, `"Stone"`, p.Stringify(false))
}

func TestMaterial(t *testing.T) {
	single := NewMaterial(search("dia-sw"), diamondSword)
	assert.False(t, single.IsWildcard())
	assert.True(t, single.Test(&item.Item{Material: "minecraft:diamond_sword"}))
	assert.False(t, single.Test(&item.Item{Material: "minecraft:iron_sword"}))
	assert.Equal(t, "dia-sw", single.Stringify(true))
	assert.Equal(t, "diamond-sword", single.Stringify(false))

	set := NewMaterialSet(search("?-sword"), []*translation.Translated{diamondSword, ironSword})
	assert.True(t, set.IsWildcard())
	assert.True(t, set.Test(&item.Item{Material: "minecraft:iron_sword"}))
	assert.False(t, set.Test(&item.Item{Material: "minecraft:stone"}))
	assert.Equal(t, "?-sword", set.Stringify(false), "a wildcard has no single label")
}

func TestEnchantment(t *testing.T) {
	sword := &item.Item{Enchantments: map[string]int{"minecraft:sharpness": 4}}

	tests := []struct {
		name  string
		level *token.Integer
		want  bool
	}{
		{"any level", nil, true},
		{"wildcard level", token.NewWildcard(1), true},
		{"exact level", token.NewInteger(1, 4), true},
		{"other level", token.NewInteger(1, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Enchantment{Token: search("sharp"), Translated: sharpness, Level: tt.level}
			assert.Equal(t, tt.want, p.Test(sword))
		})
	}

	p := &Enchantment{Token: search("sharp"), Translated: sharpness}
	assert.False(t, p.Test(&item.Item{}))

	p.Level = token.NewInteger(1, 5)
	assert.Equal(t, "sharp 5", p.Stringify(true))
	assert.Equal(t, "sharpness 5", p.Stringify(false))
}

func TestPotionEffect(t *testing.T) {
	potion := &item.Item{PotionEffects: []item.PotionEffect{
		{Type: "minecraft:speed", Amplifier: 0, DurationSeconds: 180},
		{Type: "minecraft:speed", Amplifier: 1, DurationSeconds: 90},
	}}

	tests := []struct {
		name      string
		amplifier *token.Integer
		duration  *token.Integer
		want      bool
	}{
		{"type only", nil, nil, true},
		{"amplifier of second effect", token.NewInteger(1, 1), nil, true},
		{"amplifier and duration of same effect", token.NewInteger(1, 1), token.NewTimeInteger(2, 90), true},
		{"amplifier and duration of different effects", token.NewInteger(1, 1), token.NewInteger(2, 180), false},
		{"wildcard amplifier", token.NewWildcard(1), token.NewInteger(2, 180), true},
		{"unknown amplifier", token.NewInteger(1, 3), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PotionEffect{Token: search("spe"), Translated: speed, Amplifier: tt.amplifier, Duration: tt.duration}
			assert.Equal(t, tt.want, p.Test(potion))
		})
	}

	p := &PotionEffect{Token: search("spe"), Translated: speed, Amplifier: token.NewInteger(1, 1), Duration: token.NewTimeInteger(2, 90)}
	assert.Equal(t, "spe 1 1:30", p.Stringify(true))
	assert.Equal(t, "speed 1 90", p.Stringify(false), "canonical form shows seconds")
	assert.False(t, p.Test(&item.Item{}))
}

func TestDeterioration(t *testing.T) {
	halfWorn := &item.Item{Damage: 50, MaxDurability: 100}

	tests := []struct {
		name string
		min  *token.Integer
		max  *token.Integer
		want bool
	}{
		{"no bounds", nil, nil, true},
		{"lower bound met", token.NewInteger(1, 50), nil, true},
		{"lower bound missed", token.NewInteger(1, 51), nil, false},
		{"upper bound met", token.NewInteger(1, 0), token.NewInteger(2, 50), true},
		{"upper bound missed", token.NewInteger(1, 0), token.NewInteger(2, 49), false},
		{"wildcard lower bound", token.NewWildcard(1), token.NewInteger(2, 60), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Deterioration{Token: search("deter"), Translated: wear, Min: tt.min, Max: tt.max}
			assert.Equal(t, tt.want, p.Test(halfWorn))
		})
	}

	p := &Deterioration{Token: search("deter"), Translated: wear}
	assert.False(t, p.Test(&item.Item{Damage: 10}), "items without durability never match")

	p.Min = token.NewInteger(1, 10)
	p.Max = token.NewWildcard(2)
	assert.Equal(t, "deter 10 *", p.Stringify(true))
	assert.Equal(t, "deterioration 10 *", p.Stringify(false))
}

func TestMusicInstrument(t *testing.T) {
	p := &MusicInstrument{Token: search("pond"), Translated: ponder}

	assert.True(t, p.Test(&item.Item{Instrument: "minecraft:ponder_goat_horn"}))
	assert.False(t, p.Test(&item.Item{Instrument: "minecraft:sing_goat_horn"}))
	assert.False(t, p.Test(&item.Item{}))
	assert.Equal(t, "pond", p.Stringify(true))
	assert.Equal(t, "ponder", p.Stringify(false))
}

func TestConjunction(t *testing.T) {
	sword := item.Item{
		Material:     "minecraft:diamond_sword",
		Enchantments: map[string]int{"minecraft:sharpness": 5},
	}
	plain := item.Item{Material: "minecraft:diamond_sword"}
	other := item.Item{Material: "minecraft:iron_sword", Enchantments: map[string]int{"minecraft:sharpness": 5}}

	c := Conjunction{
		NewMaterial(search("dia-sw"), diamondSword),
		&Enchantment{Token: search("sharp"), Translated: sharpness, Level: token.NewInteger(1, 5)},
	}

	assert.True(t, c.Test(&sword))
	assert.False(t, c.Test(&plain))
	assert.False(t, c.Test(&other))
	assert.Equal(t, []item.Item{sword}, c.Filter([]item.Item{plain, sword, other}))
	assert.Equal(t, "dia-sw sharp 5", c.Stringify(true))
	assert.Equal(t, "diamond-sword sharpness 5", c.Stringify(false))

	assert.True(t, Conjunction(nil).Test(&plain), "empty conjunction matches everything")
	assert.Equal(t, "", Conjunction(nil).Stringify(true))
}
