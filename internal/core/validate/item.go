package validate

import (
	"fmt"

	"github.com/lunarforge/assetforge/internal/core/model"
)

var itemRequired = []string{
	"name", "type", "rarity", "level_requirement",
	"weight", "value", "description", "lore", "visual_prompt",
}

// Item validates a normalized record as an equipment/item entry. The schema
// is strict: any key outside the canonical set fails the record.
func Item(rec map[string]any) (*model.Item, error) {
	v := &violations{kind: model.KindItem}

	requireKeys(rec, v, itemRequired...)
	checkObjectList(rec["stat_bonuses"], v, "stat_bonuses")
	checkObjectList(rec["special_effects"], v, "special_effects")
	if err := v.err(); err != nil {
		return nil, err
	}

	cp, err := copyRecord(rec)
	if err != nil {
		return nil, err
	}
	setDefault(cp, "is_tradable", true)
	setDefault(cp, "is_droppable", true)
	setDefault(cp, "stack_size", 1)

	var it model.Item
	if err := decodeStrict(cp, &it); err != nil {
		v.addf("record", "%s", err.Error())
		return nil, v.err()
	}

	strLen(v, "name", it.ItemName, 1, 100)
	if !it.Type.Valid() {
		v.addf("type", "unknown item type: %q", it.Type)
	}
	if !it.Rarity.Valid() {
		v.addf("rarity", "unknown rarity: %q", it.Rarity)
	}
	if it.WeaponType != nil && !it.WeaponType.Valid() {
		v.addf("weapon_type", "unknown weapon type: %q", *it.WeaponType)
	}
	if it.ArmorSlot != nil && !it.ArmorSlot.Valid() {
		v.addf("armor_slot", "unknown armor slot: %q", *it.ArmorSlot)
	}
	intRange(v, "level_requirement", it.LevelRequirement, 1, 100)
	if it.Durability != nil {
		intMin(v, "durability", *it.Durability, 1)
	}
	if it.Weight < 0 {
		v.addf("weight", "must be at least 0, got %v", it.Weight)
	}
	intMin(v, "value", it.Value, 0)
	intMin(v, "stack_size", it.StackSize, 1)
	strLen(v, "description", it.Description, 20, 500)
	strLen(v, "lore", it.Lore, 50, 1000)
	if it.FlavorText != "" {
		strLen(v, "flavor_text", it.FlavorText, 1, 200)
	}
	strLen(v, "visual_prompt", it.VisualPrompt, 50, 500)

	for i, b := range it.StatBonuses {
		if !b.Stat.Valid() {
			v.addf(fmt.Sprintf("stat_bonuses[%d].stat", i), "unknown stat type: %q", b.Stat)
		}
	}
	for i, e := range it.SpecialEffects {
		field := func(name string) string { return fmt.Sprintf("special_effects[%d].%s", i, name) }
		strLen(v, field("name"), e.Name, 1, 50)
		strLen(v, field("description"), e.Description, 10, 200)
		if e.Cooldown != nil {
			intMin(v, field("cooldown"), *e.Cooldown, 0)
		}
	}

	// Kind-specific field invariants.
	if it.WeaponType != nil && it.Type != model.ItemWeapon {
		v.addf("weapon_type", "only weapon items may set weapon_type, item type is %q", it.Type)
	}
	if it.ArmorSlot != nil && it.Type != model.ItemArmor {
		v.addf("armor_slot", "only armor items may set armor_slot, item type is %q", it.Type)
	}
	if it.Durability != nil && it.Type != model.ItemWeapon && it.Type != model.ItemArmor {
		v.addf("durability", "only weapon and armor items may set durability, item type is %q", it.Type)
	}

	if err := v.err(); err != nil {
		return nil, err
	}

	if it.StatBonuses == nil {
		it.StatBonuses = []model.StatBonus{}
	}
	if it.SpecialEffects == nil {
		it.SpecialEffects = []model.SpecialEffect{}
	}
	return &it, nil
}
