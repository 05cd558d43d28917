// Package fallback holds the canned records served when generation is
// exhausted or when the pipeline runs against the mock client. The records
// are deterministic, carry no randomness, and pass typed validation, so
// callers downstream never need to special-case fallback output.
package fallback

import (
	"encoding/json"
	"fmt"

	"github.com/lunarforge/assetforge/internal/core/model"
)

const monsterDoc = `{
	"name": "Snowpeak Troll",
	"type": "troll",
	"element": "ice",
	"level": 15,
	"health": 380,
	"attack": 42,
	"defense": 35,
	"magic_attack": 18,
	"magic_defense": 28,
	"speed": 10,
	"skills": 2,
	"skill_list": [
		{
			"name": "Boulder Toss",
			"type": "physical",
			"element": "earth",
			"power": 55,
			"cost": 8,
			"description": "Hurls a frozen boulder at a single target.",
			"target": "single"
		},
		{
			"name": "Frozen Roar",
			"type": "debuff",
			"element": "ice",
			"power": 0,
			"cost": 12,
			"description": "A deafening roar that lowers the speed of all enemies.",
			"duration": 3,
			"target": "all"
		}
	],
	"weaknesses": ["fire"],
	"resistances": ["ice", "water"],
	"drops": [
		{"item": "troll hide", "chance": 0.65, "quantity": "1-2"},
		{"item": "frozen heart", "chance": 0.1, "quantity": "1"}
	],
	"experience": 320,
	"gold": 75,
	"description": "A hulking troll that haunts the snowline passes, ambushing caravans for food and shiny trinkets.",
	"ai_behavior": "aggressive",
	"spawn_areas": ["snowpeak pass", "frozen caves"],
	"rarity": "uncommon",
	"visual_prompt": "A massive troll with pale blue skin covered in frost, icicles hanging from its matted fur, small black eyes and a heavy stone club dragged through the snow."
}`

const itemDoc = `{
	"name": "Wanderer's Ember Charm",
	"type": "accessory",
	"rarity": "rare",
	"level_requirement": 12,
	"weight": 0.3,
	"value": 850,
	"stat_bonuses": [
		{"stat": "vitality", "value": 8, "is_percentage": false},
		{"stat": "magic_defense", "value": 5, "is_percentage": true}
	],
	"special_effects": [
		{
			"name": "Ember Ward",
			"description": "Reduces fire damage taken while the charm is worn.",
			"trigger_condition": "passive"
		}
	],
	"description": "A small brass charm holding a sliver of ember that never cools, worn on a leather cord.",
	"lore": "Road shrines along the southern trade routes once sold these charms to travelers crossing the ashlands, and the few that survive still hold their warmth.",
	"is_soulbound": false,
	"is_tradable": true,
	"is_droppable": true,
	"stack_size": 1,
	"visual_prompt": "A small round brass charm on a worn leather cord, a faintly glowing orange ember sealed behind cloudy glass, edges scratched by years of travel."
}`

const dialogueDoc = `{
	"dialogue_id": "fallback_villager_greeting",
	"npc_name": "Mira",
	"npc_description": "A weathered villager who keeps an eye on everyone passing through the square.",
	"npc_role": "villager",
	"start_node_id": "greeting",
	"nodes": [
		{
			"node_id": "greeting",
			"node_type": "start",
			"npc_text": "Oh, a new face. Don't see many of those around here lately.",
			"npc_name": "Mira",
			"emotion": "curious",
			"next_node_id": "choices"
		},
		{
			"node_id": "choices",
			"node_type": "player_choice",
			"player_options": [
				{"text": "What's been happening here?", "next_node_id": "news"},
				{"text": "Just passing through.", "next_node_id": "farewell"}
			]
		},
		{
			"node_id": "news",
			"node_type": "npc_speech",
			"npc_text": "Wolves in the hills, taxes in the town hall. Pick your trouble.",
			"npc_name": "Mira",
			"emotion": "wry",
			"next_node_id": "farewell"
		},
		{
			"node_id": "farewell",
			"node_type": "end",
			"npc_text": "Keep your boots dry, traveler.",
			"npc_name": "Mira",
			"end_type": "friendly"
		}
	],
	"is_quest_related": false,
	"repeatable": true,
	"version": "1.0.0",
	"author": "fallback"
}`

var documents = map[model.Kind]string{
	model.KindMonster:  monsterDoc,
	model.KindItem:     itemDoc,
	model.KindDialogue: dialogueDoc,
}

// Document returns the canned JSON document for a kind, as the raw text a
// well-behaved generator would produce.
func Document(kind model.Kind) (string, error) {
	doc, ok := documents[kind]
	if !ok {
		return "", fmt.Errorf("no fallback document for kind %q", kind)
	}
	return doc, nil
}

// Record returns the canned record for a kind as a fresh generic map. Each
// call returns an independent copy so callers may mutate the result.
func Record(kind model.Kind) (map[string]any, error) {
	doc, err := Document(kind)
	if err != nil {
		return nil, err
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return nil, fmt.Errorf("fallback document for %q corrupt: %w", kind, err)
	}
	return rec, nil
}
