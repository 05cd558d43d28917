package model

// DropItem is one entry in a monster's loot table.
type DropItem struct {
	Item     string  `json:"item"`
	Chance   float64 `json:"chance"`
	Quantity string  `json:"quantity"` // range string, e.g. "1-3" or "1"
}

type Skill struct {
	Name        string      `json:"name"`
	Type        SkillType   `json:"type"`
	Element     ElementType `json:"element"`
	Power       int         `json:"power"`
	Cost        int         `json:"cost"`
	Description string      `json:"description"`
	Effect      string      `json:"effect,omitempty"`
	Duration    *int        `json:"duration,omitempty"` // turns, >= 1 when set
	Target      string      `json:"target,omitempty"`   // single/all/self
}

// Monster is the canonical validated monster record. Field names are the
// wire names; no alias keys appear in the serialized form.
type Monster struct {
	MonsterName string      `json:"name"`
	Type        string      `json:"type"`
	Element     ElementType `json:"element"`
	Level       int         `json:"level"`

	Health       int `json:"health"`
	Attack       int `json:"attack"`
	Defense      int `json:"defense"`
	MagicAttack  int `json:"magic_attack"`
	MagicDefense int `json:"magic_defense"`
	Speed        int `json:"speed"`

	Skills    int     `json:"skills"` // declared count, must equal len(SkillList)
	SkillList []Skill `json:"skill_list"`

	Weaknesses  []ElementType `json:"weaknesses"`
	Resistances []ElementType `json:"resistances"`

	Drops []DropItem `json:"drops"`

	Experience int `json:"experience"`
	Gold       int `json:"gold"`

	Description string   `json:"description"`
	AIBehavior  string   `json:"ai_behavior"`
	SpawnAreas  []string `json:"spawn_areas"`
	Rarity      string   `json:"rarity"`

	VisualPrompt string `json:"visual_prompt"`
}

func (m *Monster) Kind() Kind   { return KindMonster }
func (m *Monster) Name() string { return m.MonsterName }
