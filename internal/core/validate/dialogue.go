package validate

import (
	"fmt"

	"github.com/lunarforge/assetforge/internal/core/model"
)

var dialogueRequired = []string{
	"dialogue_id", "npc_name", "npc_description", "npc_role",
	"nodes", "start_node_id",
}

// Dialogue validates a normalized record as an NPC dialogue tree. Unlike
// monster and item, the schema tolerates unknown keys: tree output carries
// alias keys and generator embellishments that are harmless once the
// canonical fields check out.
func Dialogue(rec map[string]any) (*model.DialogueTree, error) {
	v := &violations{kind: model.KindDialogue}

	requireKeys(rec, v, dialogueRequired...)
	checkObjectList(rec["nodes"], v, "nodes")
	if nodes, ok := rec["nodes"].([]any); ok {
		for i, n := range nodes {
			node, ok := n.(map[string]any)
			if !ok {
				continue
			}
			field := func(name string) string { return fmt.Sprintf("nodes[%d].%s", i, name) }
			checkObjectList(node["player_options"], v, field("player_options"))
			checkObjectList(node["conditions"], v, field("conditions"))
			checkObjectList(node["effects"], v, field("effects"))
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	cp, err := copyRecord(rec)
	if err != nil {
		return nil, err
	}
	setDefault(cp, "repeatable", true)
	setDefault(cp, "version", "1.0.0")
	if nodes, ok := cp["nodes"].([]any); ok {
		for _, n := range nodes {
			node, ok := n.(map[string]any)
			if !ok {
				continue
			}
			setDefault(node, "can_repeat", true)
			setDefault(node, "priority", 1)
			if conds, ok := node["conditions"].([]any); ok {
				for _, c := range conds {
					if cond, ok := c.(map[string]any); ok {
						setDefault(cond, "operator", ">=")
					}
				}
			}
			if opts, ok := node["player_options"].([]any); ok {
				for _, o := range opts {
					opt, ok := o.(map[string]any)
					if !ok {
						continue
					}
					if conds, ok := opt["conditions"].([]any); ok {
						for _, c := range conds {
							if cond, ok := c.(map[string]any); ok {
								setDefault(cond, "operator", ">=")
							}
						}
					}
				}
			}
		}
	}

	var d model.DialogueTree
	if err := decodeLoose(cp, &d); err != nil {
		v.addf("record", "%s", err.Error())
		return nil, v.err()
	}

	strLen(v, "dialogue_id", d.DialogueID, 1, 50)
	strLen(v, "npc_name", d.NPCName, 1, 50)
	strLen(v, "npc_description", d.NPCDescription, 10, 500)
	strLen(v, "npc_role", d.NPCRole, 1, 50)
	if len(d.Nodes) == 0 {
		v.addf("nodes", "dialogue tree must contain at least one node")
	}

	ids := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		field := func(name string) string { return fmt.Sprintf("nodes[%d].%s", i, name) }

		strLen(v, field("node_id"), n.NodeID, 1, 50)
		if prev, dup := ids[n.NodeID]; dup {
			v.addf(field("node_id"), "duplicate node id %q, first used by nodes[%d]", n.NodeID, prev)
		} else {
			ids[n.NodeID] = i
		}

		if !n.NodeType.Valid() {
			v.addf(field("node_type"), "unknown node type: %q", n.NodeType)
		}
		if n.NPCText != "" {
			strLen(v, field("npc_text"), n.NPCText, 1, 500)
		}
		intRange(v, field("priority"), n.Priority, 1, 10)

		switch n.NodeType {
		case model.NodeStart, model.NodeNPCSpeech:
			if n.NPCText == "" {
				v.addf(field("npc_text"), "%s nodes must carry npc text", n.NodeType)
			}
		case model.NodePlayerChoice:
			if len(n.PlayerOptions) == 0 {
				v.addf(field("player_options"), "player_choice nodes must offer at least one option")
			}
		}

		for j, c := range n.Conditions {
			if !c.Type.Valid() {
				v.addf(field(fmt.Sprintf("conditions[%d].type", j)), "unknown condition type: %q", c.Type)
			}
		}

		for j, o := range n.PlayerOptions {
			optField := func(name string) string {
				return fmt.Sprintf("nodes[%d].player_options[%d].%s", i, j, name)
			}
			if o.Text == "" {
				v.addf(optField("text"), "option is missing display text")
			} else {
				strLen(v, optField("text"), o.Text, 1, 200)
			}
			if o.NextNodeID == "" {
				v.addf(optField("next_node_id"), "required field missing")
			}
			for k, c := range o.Conditions {
				if !c.Type.Valid() {
					v.addf(optField(fmt.Sprintf("conditions[%d].type", k)), "unknown condition type: %q", c.Type)
				}
			}
		}
	}

	// Graph invariants: the start node must exist and every option target
	// must be a known node id or the END sentinel. Cycles are legal and
	// unreachable nodes are not an error.
	if d.StartNodeID != "" {
		if _, ok := ids[d.StartNodeID]; !ok {
			v.addf("start_node_id", "start node %q not found in nodes", d.StartNodeID)
		}
	}
	for i, n := range d.Nodes {
		for j, o := range n.PlayerOptions {
			if o.NextNodeID == "" || o.NextNodeID == model.EndNodeID {
				continue
			}
			if _, ok := ids[o.NextNodeID]; !ok {
				v.addf(fmt.Sprintf("nodes[%d].player_options[%d].next_node_id", i, j),
					"dangling node reference: %q -> %q", n.NodeID, o.NextNodeID)
			}
		}
	}

	if err := v.err(); err != nil {
		return nil, err
	}

	for i := range d.Nodes {
		if d.Nodes[i].PlayerOptions == nil {
			d.Nodes[i].PlayerOptions = []model.DialogueOption{}
		}
		if d.Nodes[i].Conditions == nil {
			d.Nodes[i].Conditions = []model.Condition{}
		}
		if d.Nodes[i].Effects == nil {
			d.Nodes[i].Effects = []model.Effect{}
		}
		for j := range d.Nodes[i].PlayerOptions {
			opt := &d.Nodes[i].PlayerOptions[j]
			if opt.Conditions == nil {
				opt.Conditions = []model.Condition{}
			}
			if opt.Effects == nil {
				opt.Effects = []model.Effect{}
			}
		}
	}
	return &d, nil
}
