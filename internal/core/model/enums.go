package model

// Closed enumerations shared by the three record schemas. Validation rejects
// any value outside the declared set, matching the upstream generator
// contract ("use value not object" semantics).

type ElementType string

const (
	ElementFire      ElementType = "fire"
	ElementWater     ElementType = "water"
	ElementIce       ElementType = "ice"
	ElementEarth     ElementType = "earth"
	ElementWind      ElementType = "wind"
	ElementLightning ElementType = "lightning"
	ElementLight     ElementType = "light"
	ElementDark      ElementType = "dark"
	ElementNone      ElementType = "none"
)

var elementTypes = map[ElementType]struct{}{
	ElementFire: {}, ElementWater: {}, ElementIce: {}, ElementEarth: {},
	ElementWind: {}, ElementLightning: {}, ElementLight: {}, ElementDark: {},
	ElementNone: {},
}

func (e ElementType) Valid() bool { _, ok := elementTypes[e]; return ok }

type SkillType string

const (
	SkillPhysical SkillType = "physical"
	SkillMagic    SkillType = "magic"
	SkillBuff     SkillType = "buff"
	SkillDebuff   SkillType = "debuff"
	SkillHeal     SkillType = "heal"
	SkillSummon   SkillType = "summon"
)

var skillTypes = map[SkillType]struct{}{
	SkillPhysical: {}, SkillMagic: {}, SkillBuff: {},
	SkillDebuff: {}, SkillHeal: {}, SkillSummon: {},
}

func (s SkillType) Valid() bool { _, ok := skillTypes[s]; return ok }

type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemAccessory  ItemType = "accessory"
	ItemConsumable ItemType = "consumable"
	ItemMaterial   ItemType = "material"
	ItemQuest      ItemType = "quest"
)

var itemTypes = map[ItemType]struct{}{
	ItemWeapon: {}, ItemArmor: {}, ItemAccessory: {},
	ItemConsumable: {}, ItemMaterial: {}, ItemQuest: {},
}

func (t ItemType) Valid() bool { _, ok := itemTypes[t]; return ok }

type ItemRarity string

const (
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
	RarityMythic    ItemRarity = "mythic"
)

var itemRarities = map[ItemRarity]struct{}{
	RarityCommon: {}, RarityUncommon: {}, RarityRare: {},
	RarityEpic: {}, RarityLegendary: {}, RarityMythic: {},
}

func (r ItemRarity) Valid() bool { _, ok := itemRarities[r]; return ok }

type WeaponType string

const (
	WeaponSword      WeaponType = "sword"
	WeaponGreatsword WeaponType = "greatsword"
	WeaponDagger     WeaponType = "dagger"
	WeaponStaff      WeaponType = "staff"
	WeaponWand       WeaponType = "wand"
	WeaponBow        WeaponType = "bow"
	WeaponCrossbow   WeaponType = "crossbow"
	WeaponAxe        WeaponType = "axe"
	WeaponMace       WeaponType = "mace"
	WeaponSpear      WeaponType = "spear"
	WeaponShield     WeaponType = "shield"
)

var weaponTypes = map[WeaponType]struct{}{
	WeaponSword: {}, WeaponGreatsword: {}, WeaponDagger: {}, WeaponStaff: {},
	WeaponWand: {}, WeaponBow: {}, WeaponCrossbow: {}, WeaponAxe: {},
	WeaponMace: {}, WeaponSpear: {}, WeaponShield: {},
}

func (w WeaponType) Valid() bool { _, ok := weaponTypes[w]; return ok }

type ArmorSlot string

const (
	SlotHead  ArmorSlot = "head"
	SlotChest ArmorSlot = "chest"
	SlotHands ArmorSlot = "hands"
	SlotLegs  ArmorSlot = "legs"
	SlotFeet  ArmorSlot = "feet"
	SlotNeck  ArmorSlot = "neck"
	SlotRing  ArmorSlot = "ring"
	SlotBack  ArmorSlot = "back"
)

var armorSlots = map[ArmorSlot]struct{}{
	SlotHead: {}, SlotChest: {}, SlotHands: {}, SlotLegs: {},
	SlotFeet: {}, SlotNeck: {}, SlotRing: {}, SlotBack: {},
}

func (a ArmorSlot) Valid() bool { _, ok := armorSlots[a]; return ok }

type StatType string

const (
	StatStrength       StatType = "strength"
	StatDexterity      StatType = "dexterity"
	StatIntelligence   StatType = "intelligence"
	StatVitality       StatType = "vitality"
	StatAgility        StatType = "agility"
	StatLuck           StatType = "luck"
	StatAttack         StatType = "attack"
	StatMagicAttack    StatType = "magic_attack"
	StatDefense        StatType = "defense"
	StatMagicDefense   StatType = "magic_defense"
	StatCriticalChance StatType = "critical_chance"
	StatCriticalDamage StatType = "critical_damage"
	StatHealth         StatType = "health"
	StatMana           StatType = "mana"
	StatStamina        StatType = "stamina"
)

var statTypes = map[StatType]struct{}{
	StatStrength: {}, StatDexterity: {}, StatIntelligence: {}, StatVitality: {},
	StatAgility: {}, StatLuck: {}, StatAttack: {}, StatMagicAttack: {},
	StatDefense: {}, StatMagicDefense: {}, StatCriticalChance: {},
	StatCriticalDamage: {}, StatHealth: {}, StatMana: {}, StatStamina: {},
}

func (s StatType) Valid() bool { _, ok := statTypes[s]; return ok }

type NodeType string

const (
	NodeStart        NodeType = "start"
	NodeNPCSpeech    NodeType = "npc_speech"
	NodePlayerChoice NodeType = "player_choice"
	NodeBranch       NodeType = "branch"
	NodeEnd          NodeType = "end"
	NodeConditional  NodeType = "conditional"
)

var nodeTypes = map[NodeType]struct{}{
	NodeStart: {}, NodeNPCSpeech: {}, NodePlayerChoice: {},
	NodeBranch: {}, NodeEnd: {}, NodeConditional: {},
}

func (n NodeType) Valid() bool { _, ok := nodeTypes[n]; return ok }

type ConditionType string

const (
	CondQuestComplete ConditionType = "quest_complete"
	CondItemPresent   ConditionType = "item_present"
	CondSkillLevel    ConditionType = "skill_level"
	CondReputation    ConditionType = "reputation"
	CondTimeOfDay     ConditionType = "time_of_day"
	CondRandom        ConditionType = "random"
	CondAlways        ConditionType = "always"
	CondFlagCheck     ConditionType = "flag_check"
)

var conditionTypes = map[ConditionType]struct{}{
	CondQuestComplete: {}, CondItemPresent: {}, CondSkillLevel: {},
	CondReputation: {}, CondTimeOfDay: {}, CondRandom: {}, CondAlways: {},
	CondFlagCheck: {},
}

func (c ConditionType) Valid() bool { _, ok := conditionTypes[c]; return ok }
