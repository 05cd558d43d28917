// Package normalize rewrites a parsed generic record so that known alias
// keys are mirrored onto their canonical keys before typed validation runs.
// Generators name dialogue fields inconsistently (type vs node_type, text vs
// npc_text, option_text vs choice_text); the alias tables live here, in one
// place, so validation only ever sees canonical names.
//
// Normalization is idempotent and never fails. Monster and item records pass
// through untouched: those schemas require exact canonical keys and the
// validator rejects extras.
package normalize

import "github.com/lunarforge/assetforge/internal/core/model"

// Record applies the alias table for the given record kind. Both the alias
// and the canonical key remain present afterwards so downstream readers of
// either name succeed. Keys outside the alias groups are not touched.
func Record(kind model.Kind, rec map[string]any) map[string]any {
	if kind != model.KindDialogue {
		return rec
	}

	nodes, ok := rec["nodes"].([]any)
	if !ok {
		return rec
	}
	for _, n := range nodes {
		node, ok := n.(map[string]any)
		if !ok {
			continue
		}
		normalizeNode(node)
	}
	return rec
}

// normalizeNode mirrors node-level aliases, then option-list aliases, then
// option-level aliases. The node type is resolved first because it decides
// which text/option requirement validation will apply.
func normalizeNode(node map[string]any) {
	mirror(node, "node_type", "type")
	mirror(node, "npc_text", "text")
	mirror(node, "player_options", "options")

	for _, key := range []string{"player_options", "options"} {
		opts, ok := node[key].([]any)
		if !ok {
			continue
		}
		for _, o := range opts {
			opt, ok := o.(map[string]any)
			if !ok {
				continue
			}
			normalizeOption(opt)
		}
	}
}

// normalizeOption keeps text, option_text and choice_text in sync: if any
// one is present, all three end up carrying the same value, canonical name
// winning when several disagree.
func normalizeOption(opt map[string]any) {
	text, ok := firstPresent(opt, "text", "option_text", "choice_text")
	if !ok {
		return
	}
	opt["text"] = text
	opt["option_text"] = text
	opt["choice_text"] = text
}

// mirror copies whichever of canonical/alias is present onto the other. An
// explicit null counts as absent. When both are present the canonical value
// wins and is copied over the alias so a second pass yields the same record.
func mirror(m map[string]any, canonical, alias string) {
	cv, cok := m[canonical]
	if cv == nil {
		cok = false
	}
	av, aok := m[alias]
	if av == nil {
		aok = false
	}
	switch {
	case cok:
		m[alias] = cv
	case aok:
		m[canonical] = av
	}
}

func firstPresent(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
