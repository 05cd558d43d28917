package validate

import (
	"fmt"

	"github.com/lunarforge/assetforge/internal/core/model"
)

var monsterRequired = []string{
	"name", "type", "element", "level",
	"health", "attack", "defense", "magic_attack", "magic_defense", "speed",
	"skills", "skill_list", "experience", "gold",
	"description", "visual_prompt",
}

// Monster validates a normalized record as a monster. The schema is strict:
// any key outside the canonical set fails the record.
func Monster(rec map[string]any) (*model.Monster, error) {
	v := &violations{kind: model.KindMonster}

	requireKeys(rec, v, monsterRequired...)
	checkObjectList(rec["skill_list"], v, "skill_list")
	checkObjectList(rec["drops"], v, "drops")
	if err := v.err(); err != nil {
		return nil, err
	}

	cp, err := copyRecord(rec)
	if err != nil {
		return nil, err
	}
	setDefault(cp, "ai_behavior", "aggressive")
	setDefault(cp, "rarity", "common")
	if skills, ok := cp["skill_list"].([]any); ok {
		for _, s := range skills {
			if skill, ok := s.(map[string]any); ok {
				setDefault(skill, "element", string(model.ElementNone))
				setDefault(skill, "target", "single")
			}
		}
	}

	var m model.Monster
	if err := decodeStrict(cp, &m); err != nil {
		v.addf("record", "%s", err.Error())
		return nil, v.err()
	}

	strLen(v, "name", m.MonsterName, 1, 50)
	strLen(v, "type", m.Type, 1, 30)
	if !m.Element.Valid() {
		v.addf("element", "unknown element type: %q", m.Element)
	}
	intRange(v, "level", m.Level, 1, 100)
	intMin(v, "health", m.Health, 1)
	intMin(v, "attack", m.Attack, 0)
	intMin(v, "defense", m.Defense, 0)
	intMin(v, "magic_attack", m.MagicAttack, 0)
	intMin(v, "magic_defense", m.MagicDefense, 0)
	intMin(v, "speed", m.Speed, 0)
	intMin(v, "skills", m.Skills, 0)
	intMin(v, "experience", m.Experience, 0)
	intMin(v, "gold", m.Gold, 0)
	strLen(v, "description", m.Description, 10, 500)
	strLen(v, "visual_prompt", m.VisualPrompt, 50, 500)

	for i, s := range m.SkillList {
		field := func(name string) string { return fmt.Sprintf("skill_list[%d].%s", i, name) }
		strLen(v, field("name"), s.Name, 1, 50)
		if !s.Type.Valid() {
			v.addf(field("type"), "unknown skill type: %q", s.Type)
		}
		if !s.Element.Valid() {
			v.addf(field("element"), "unknown element type: %q", s.Element)
		}
		intMin(v, field("power"), s.Power, 0)
		intMin(v, field("cost"), s.Cost, 0)
		strLen(v, field("description"), s.Description, 5, 200)
		if s.Duration != nil {
			intMin(v, field("duration"), *s.Duration, 1)
		}
	}

	for i, e := range m.Weaknesses {
		if !e.Valid() {
			v.addf(fmt.Sprintf("weaknesses[%d]", i), "unknown element type: %q", e)
		}
	}
	for i, e := range m.Resistances {
		if !e.Valid() {
			v.addf(fmt.Sprintf("resistances[%d]", i), "unknown element type: %q", e)
		}
	}

	for i, d := range m.Drops {
		field := func(name string) string { return fmt.Sprintf("drops[%d].%s", i, name) }
		if d.Item == "" {
			v.addf(field("item"), "required field missing")
		}
		if d.Chance < 0 || d.Chance > 1 {
			v.addf(field("chance"), "drop chance must be between 0 and 1, got %v", d.Chance)
		}
		if d.Quantity == "" {
			v.addf(field("quantity"), "required field missing")
		}
	}

	// Cross-field invariants run after per-field checks so their input is
	// fully decoded.
	if len(m.SkillList) != m.Skills {
		v.addf("skill_list", "skill count mismatch: skills declares %d, skill_list has %d", m.Skills, len(m.SkillList))
	}
	for _, w := range m.Weaknesses {
		if w == m.Element && m.Element != model.ElementNone {
			v.addf("weaknesses", "monster cannot be weak to its own element %q", m.Element)
			break
		}
	}

	if err := v.err(); err != nil {
		return nil, err
	}

	// List fields serialize as arrays, never null.
	if m.SkillList == nil {
		m.SkillList = []model.Skill{}
	}
	if m.Weaknesses == nil {
		m.Weaknesses = []model.ElementType{}
	}
	if m.Resistances == nil {
		m.Resistances = []model.ElementType{}
	}
	if m.Drops == nil {
		m.Drops = []model.DropItem{}
	}
	if m.SpawnAreas == nil {
		m.SpawnAreas = []string{}
	}
	return &m, nil
}
