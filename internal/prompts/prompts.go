// Package prompts builds the system and user prompts sent to the provider.
// System prompts carry the JSON contract for each asset kind and normally
// come from the config file; the built-in defaults keep the pipeline usable
// without one.
package prompts

import (
	"fmt"
	"strings"

	"github.com/lunarforge/assetforge/internal/config"
	"github.com/lunarforge/assetforge/internal/core/model"
)

const defaultMonsterSystem = `You are a game content designer creating monsters for a fantasy RPG.
Respond with exactly one JSON object inside a ` + "```json" + ` fenced block and nothing else.
The object must use these keys: name, type, element, level, health, attack, defense,
magic_attack, magic_defense, speed, skills, skill_list, weaknesses, resistances, drops,
experience, gold, description, visual_prompt. Optional keys: ai_behavior, spawn_areas, rarity.
Rules: "skills" must equal the length of "skill_list"; every skill is an object with
name, type, element, power, cost and description; "weaknesses" and "resistances" are arrays
of element names (fire, water, ice, earth, wind, lightning, light, dark, none) and must not
include the monster's own element as a weakness; "drops" is an array of objects with item,
chance (0 to 1) and quantity; "visual_prompt" is a 50 to 500 character art description.
Do not invent any other keys.`

const defaultItemSystem = `You are a game content designer creating items for a fantasy RPG.
Respond with exactly one JSON object inside a ` + "```json" + ` fenced block and nothing else.
The object must use these keys: name, type, rarity, level_requirement, weight, value,
description, lore, visual_prompt. Optional keys: weapon_type, armor_slot, durability,
stat_bonuses, special_effects, flavor_text, is_soulbound, is_tradable, is_droppable, stack_size.
Rules: "type" is one of weapon, armor, accessory, consumable, material, quest;
"weapon_type" may only appear on weapons, "armor_slot" only on armor, and "durability"
only on weapons or armor; "stat_bonuses" and "special_effects" are arrays of objects;
"lore" is 50 to 1000 characters; "visual_prompt" is a 50 to 500 character art description.
Do not invent any other keys.`

const defaultDialogueSystem = `You are a game writer creating branching NPC dialogue for a fantasy RPG.
Respond with exactly one JSON object inside a ` + "```json" + ` fenced block and nothing else.
The object must use these keys: dialogue_id, npc_name, npc_description, npc_role,
start_node_id, nodes. Each node is an object with node_id and node_type (start, npc_speech,
player_choice, branch, end, conditional). start and npc_speech nodes must carry npc_text;
player_choice nodes must carry a player_options array where every option has text and
next_node_id. Every next_node_id must name an existing node_id or the literal "END".
start_node_id must name one of the nodes. Node ids must be unique.`

// Manager resolves the system prompt for each asset kind, preferring the
// configured template over the built-in default.
type Manager struct {
	templates config.PromptTemplates
}

func NewManager(templates config.PromptTemplates) *Manager {
	return &Manager{templates: templates}
}

func (m *Manager) System(kind model.Kind) (string, error) {
	switch kind {
	case model.KindMonster:
		return pick(m.templates.Monster, defaultMonsterSystem), nil
	case model.KindItem:
		return pick(m.templates.Item, defaultItemSystem), nil
	case model.KindDialogue:
		return pick(m.templates.Dialogue, defaultDialogueSystem), nil
	default:
		return "", fmt.Errorf("no system prompt for kind %q", kind)
	}
}

func pick(configured, fallback string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}
	return fallback
}

type MonsterParams struct {
	Region  string
	Level   int
	Element string
	Theme   string
}

func MonsterPrompt(p MonsterParams) string {
	var b strings.Builder
	b.WriteString("Create a monster")
	if p.Theme != "" {
		fmt.Fprintf(&b, " themed around %s", p.Theme)
	}
	if p.Region != "" {
		fmt.Fprintf(&b, " for the %s region", p.Region)
	}
	b.WriteString(".")
	if p.Level > 0 {
		fmt.Fprintf(&b, " It should be around level %d.", p.Level)
	}
	if p.Element != "" {
		fmt.Fprintf(&b, " Its element should be %s.", p.Element)
	}
	return b.String()
}

type ItemParams struct {
	Category string
	Rarity   string
	Level    int
	Theme    string
}

func ItemPrompt(p ItemParams) string {
	var b strings.Builder
	b.WriteString("Create a")
	if p.Rarity != "" {
		fmt.Fprintf(&b, " %s", p.Rarity)
	}
	if p.Category != "" {
		fmt.Fprintf(&b, " %s item.", p.Category)
	} else {
		b.WriteString(" new item.")
	}
	if p.Level > 0 {
		fmt.Fprintf(&b, " It should require around level %d.", p.Level)
	}
	if p.Theme != "" {
		fmt.Fprintf(&b, " Theme: %s.", p.Theme)
	}
	return b.String()
}

type DialogueParams struct {
	NPCName      string
	NPCRole      string
	Context      string
	QuestRelated bool
}

func DialoguePrompt(p DialogueParams) string {
	var b strings.Builder
	b.WriteString("Write an NPC dialogue tree")
	if p.NPCName != "" {
		fmt.Fprintf(&b, " for %s", p.NPCName)
	}
	if p.NPCRole != "" {
		fmt.Fprintf(&b, ", a %s", p.NPCRole)
	}
	b.WriteString(".")
	if p.Context != "" {
		fmt.Fprintf(&b, " Context: %s.", p.Context)
	}
	if p.QuestRelated {
		b.WriteString(" The conversation should offer the player a quest.")
	}
	return b.String()
}
