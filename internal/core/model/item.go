package model

type StatBonus struct {
	Stat         StatType `json:"stat"`
	Value        int      `json:"value"`
	IsPercentage bool     `json:"is_percentage"`
}

type SpecialEffect struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	TriggerCondition string `json:"trigger_condition,omitempty"`
	Cooldown         *int   `json:"cooldown,omitempty"` // turns, >= 0 when set
}

// Item is the canonical validated equipment/item record.
type Item struct {
	ItemName string     `json:"name"`
	Type     ItemType   `json:"type"`
	Rarity   ItemRarity `json:"rarity"`

	// Kind-specific fields: WeaponType only for weapons, ArmorSlot only for
	// armor, Durability only for weapon/armor.
	WeaponType *WeaponType `json:"weapon_type,omitempty"`
	ArmorSlot  *ArmorSlot  `json:"armor_slot,omitempty"`
	Durability *int        `json:"durability,omitempty"`

	LevelRequirement int     `json:"level_requirement"`
	Weight           float64 `json:"weight"`
	Value            int     `json:"value"`

	StatBonuses    []StatBonus     `json:"stat_bonuses"`
	SpecialEffects []SpecialEffect `json:"special_effects"`

	Description string `json:"description"`
	Lore        string `json:"lore"`
	FlavorText  string `json:"flavor_text,omitempty"`

	IsSoulbound bool `json:"is_soulbound"`
	IsTradable  bool `json:"is_tradable"`
	IsDroppable bool `json:"is_droppable"`
	StackSize   int  `json:"stack_size"`

	VisualPrompt string `json:"visual_prompt"`
}

func (i *Item) Kind() Kind   { return KindItem }
func (i *Item) Name() string { return i.ItemName }
