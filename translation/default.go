package translation

// DefaultCatalog returns a small English catalog of common vanilla concepts.
// It backs the CLI when no catalog source is configured.
func DefaultCatalog() *Catalog {
	entries := []Entry{
		{CategoryMaterial, "minecraft:diamond", "Diamond"},
		{CategoryMaterial, "minecraft:diamond_sword", "Diamond Sword"},
		{CategoryMaterial, "minecraft:diamond_pickaxe", "Diamond Pickaxe"},
		{CategoryMaterial, "minecraft:diamond_chestplate", "Diamond Chestplate"},
		{CategoryMaterial, "minecraft:diamond_block", "Block of Diamond"},
		{CategoryMaterial, "minecraft:iron_sword", "Iron Sword"},
		{CategoryMaterial, "minecraft:iron_pickaxe", "Iron Pickaxe"},
		{CategoryMaterial, "minecraft:iron_ingot", "Iron Ingot"},
		{CategoryMaterial, "minecraft:netherite_sword", "Netherite Sword"},
		{CategoryMaterial, "minecraft:netherite_pickaxe", "Netherite Pickaxe"},
		{CategoryMaterial, "minecraft:golden_apple", "Golden Apple"},
		{CategoryMaterial, "minecraft:potion", "Potion"},
		{CategoryMaterial, "minecraft:splash_potion", "Splash Potion"},
		{CategoryMaterial, "minecraft:written_book", "Written Book"},
		{CategoryMaterial, "minecraft:enchanted_book", "Enchanted Book"},
		{CategoryMaterial, "minecraft:goat_horn", "Goat Horn"},
		{CategoryMaterial, "minecraft:elytra", "Elytra"},
		{CategoryMaterial, "minecraft:stone", "Stone"},
		{CategoryEnchantment, "minecraft:sharpness", "Sharpness"},
		{CategoryEnchantment, "minecraft:efficiency", "Efficiency"},
		{CategoryEnchantment, "minecraft:unbreaking", "Unbreaking"},
		{CategoryEnchantment, "minecraft:mending", "Mending"},
		{CategoryEnchantment, "minecraft:fortune", "Fortune"},
		{CategoryEnchantment, "minecraft:silk_touch", "Silk Touch"},
		{CategoryEnchantment, "minecraft:protection", "Protection"},
		{CategoryEnchantment, "minecraft:fire_aspect", "Fire Aspect"},
		{CategoryPotionEffect, "minecraft:speed", "Speed"},
		{CategoryPotionEffect, "minecraft:strength", "Strength"},
		{CategoryPotionEffect, "minecraft:regeneration", "Regeneration"},
		{CategoryPotionEffect, "minecraft:fire_resistance", "Fire Resistance"},
		{CategoryPotionEffect, "minecraft:night_vision", "Night Vision"},
		{CategoryPotionEffect, "minecraft:instant_health", "Instant Health"},
		{CategoryDeterioration, "itemquery:deterioration", "Deterioration"},
		{CategoryMusicInstrument, "minecraft:ponder_goat_horn", "Ponder"},
		{CategoryMusicInstrument, "minecraft:sing_goat_horn", "Sing"},
		{CategoryMusicInstrument, "minecraft:seek_goat_horn", "Seek"},
		{CategoryMusicInstrument, "minecraft:feel_goat_horn", "Feel"},
	}

	return &Catalog{
		FormatVersion: CurrentFormatVersion,
		Locale:        "en_us",
		Entries:       entries,
	}
}
