package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarforge/assetforge/internal/core/model"
)

func parse(t *testing.T, doc string) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &rec))
	return rec
}

func TestNodeTypeAlias(t *testing.T) {
	rec := parse(t, `{"nodes": [{"node_id": "n1", "type": "npc_speech", "npc_text": "Hello."}]}`)
	out := Record(model.KindDialogue, rec)

	node := out["nodes"].([]any)[0].(map[string]any)
	assert.Equal(t, "npc_speech", node["node_type"])
	assert.Equal(t, "npc_speech", node["type"])
	assert.Equal(t, "Hello.", node["text"])
}

func TestOptionTextAlias(t *testing.T) {
	rec := parse(t, `{"nodes": [{
		"node_id": "n1",
		"node_type": "player_choice",
		"player_options": [{"option_text": "Show me your wares", "next_node_id": "END"}]
	}]}`)
	out := Record(model.KindDialogue, rec)

	node := out["nodes"].([]any)[0].(map[string]any)
	opt := node["player_options"].([]any)[0].(map[string]any)
	assert.Equal(t, "Show me your wares", opt["text"])
	assert.Equal(t, "Show me your wares", opt["option_text"])
	assert.Equal(t, "Show me your wares", opt["choice_text"])
}

func TestChoiceTextAlias(t *testing.T) {
	rec := parse(t, `{"nodes": [{
		"node_id": "n1",
		"node_type": "player_choice",
		"options": [{"choice_text": "Goodbye", "next_node_id": "END"}]
	}]}`)
	out := Record(model.KindDialogue, rec)

	node := out["nodes"].([]any)[0].(map[string]any)
	assert.NotNil(t, node["player_options"], "options must be mirrored onto player_options")
	opt := node["player_options"].([]any)[0].(map[string]any)
	assert.Equal(t, "Goodbye", opt["text"])
}

func TestCanonicalWinsOverAlias(t *testing.T) {
	rec := parse(t, `{"nodes": [{"node_id": "n1", "node_type": "end", "type": "npc_speech"}]}`)
	out := Record(model.KindDialogue, rec)

	node := out["nodes"].([]any)[0].(map[string]any)
	assert.Equal(t, "end", node["node_type"])
	assert.Equal(t, "end", node["type"])
}

func TestNullAliasTreatedAsAbsent(t *testing.T) {
	rec := parse(t, `{"nodes": [{"node_id": "n1", "npc_text": null, "text": "Hi."}]}`)
	out := Record(model.KindDialogue, rec)

	node := out["nodes"].([]any)[0].(map[string]any)
	assert.Equal(t, "Hi.", node["npc_text"])
}

func TestUnrelatedKeysUntouched(t *testing.T) {
	rec := parse(t, `{"npc_name": "Smith", "custom_field": 42, "nodes": [{"node_id": "n1", "emotion": "angry"}]}`)
	out := Record(model.KindDialogue, rec)

	assert.Equal(t, "Smith", out["npc_name"])
	assert.Equal(t, float64(42), out["custom_field"])
	node := out["nodes"].([]any)[0].(map[string]any)
	assert.Equal(t, "angry", node["emotion"])
}

func TestIdempotence(t *testing.T) {
	docs := map[model.Kind]string{
		model.KindDialogue: `{"nodes": [{
			"node_id": "n1", "type": "player_choice",
			"options": [{"option_text": "Hello", "next_node_id": "END"}]
		}]}`,
		model.KindMonster: `{"name": "Goblin", "level": 3}`,
		model.KindItem:    `{"name": "Dagger", "type": "weapon"}`,
	}

	for kind, doc := range docs {
		once := Record(kind, parse(t, doc))
		onceJSON, err := json.Marshal(once)
		require.NoError(t, err)

		twice := Record(kind, once)
		twiceJSON, err := json.Marshal(twice)
		require.NoError(t, err)

		assert.JSONEq(t, string(onceJSON), string(twiceJSON), "kind %s", kind)
	}
}

func TestMonsterAndItemPassThrough(t *testing.T) {
	rec := parse(t, `{"name": "Goblin", "type": "goblin"}`)
	assert.Equal(t, rec, Record(model.KindMonster, rec))
	assert.Equal(t, rec, Record(model.KindItem, rec))
}
