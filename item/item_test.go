package item

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/itemquery/errors"
)

func TestDeteriorationPercent(t *testing.T) {
	tests := []struct {
		name   string
		item   Item
		want   int
		wantOK bool
	}{
		{"pristine", Item{MaxDurability: 1561}, 0, true},
		{"half worn", Item{Damage: 50, MaxDurability: 100}, 50, true},
		{"rounds down", Item{Damage: 2, MaxDurability: 3}, 66, true},
		{"damage clamped", Item{Damage: 500, MaxDurability: 100}, 100, true},
		{"negative damage clamped", Item{Damage: -4, MaxDurability: 100}, 0, true},
		{"no durability", Item{Damage: 3}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.item.DeteriorationPercent()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestEffectsOf(t *testing.T) {
	it := Item{PotionEffects: []PotionEffect{
		{Type: "minecraft:speed", Amplifier: 0, DurationSeconds: 180},
		{Type: "minecraft:strength", Amplifier: 1, DurationSeconds: 90},
		{Type: "minecraft:speed", Amplifier: 1, DurationSeconds: 90},
	}}

	assert.Len(t, it.EffectsOf("minecraft:speed"), 2)
	assert.Empty(t, it.EffectsOf("minecraft:night_vision"))
}

func TestTexts(t *testing.T) {
	it := Item{DisplayName: "Excalibur", Lore: []string{"Pulled from stone"}, Pages: []string{"Once upon a time"}}
	assert.Equal(t, []string{"Excalibur", "Pulled from stone", "Once upon a time"}, it.Texts())
	assert.Empty(t, (&Item{}).Texts())
}

func TestEnchantmentLevel(t *testing.T) {
	it := Item{Enchantments: map[string]int{"minecraft:sharpness": 5}}

	level, ok := it.EnchantmentLevel("minecraft:sharpness")
	assert.True(t, ok)
	assert.Equal(t, 5, level)

	_, ok = it.EnchantmentLevel("minecraft:mending")
	assert.False(t, ok)
}

func TestDecodeInventory(t *testing.T) {
	inv, err := DecodeInventory(strings.NewReader(`
name: chest
items:
  - material: minecraft:diamond_sword
    enchantments:
      minecraft:sharpness: 5
    damage: 100
    max_durability: 1561
  - material: minecraft:potion
    amount: 3
    potion_effects:
      - type: minecraft:speed
        amplifier: 1
        duration_seconds: 90
`))
	require.NoError(t, err)
	assert.Equal(t, "chest", inv.Name)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, 1, inv.Items[0].Amount, "amount defaults to 1")
	assert.Equal(t, 5, inv.Items[0].Enchantments["minecraft:sharpness"])
	assert.Equal(t, 3, inv.Items[1].Amount)
	assert.Equal(t, 90, inv.Items[1].PotionEffects[0].DurationSeconds)
}

func TestDecodeInventoryErrors(t *testing.T) {
	_, err := DecodeInventory(strings.NewReader("items:\n  - amount: 2\n"))
	assert.ErrorContains(t, err, "no material")

	_, err = DecodeInventory(strings.NewReader("items:\n  - material: minecraft:stone\n    colour: grey\n"))
	assert.Error(t, err)

	inv, err := DecodeInventory(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, inv.Items)
}

func TestLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - material: minecraft:stone\n"), 0644))

	inv, err := LoadInventory(path)
	require.NoError(t, err)
	assert.Len(t, inv.Items, 1)

	_, err = LoadInventory(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.IsNotFoundError(err))
}
