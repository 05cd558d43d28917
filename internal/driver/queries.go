package driver

const (
	// Re-saving a dialogue replaces it wholesale, so stale nodes from a
	// previous version never linger.
	DeleteDialogueQuery = `
		MATCH (n {dialogue_id: $dialogue_id})
		DETACH DELETE n
	`

	SaveDialogueQuery = `
		MERGE (d:Dialogue {dialogue_id: $dialogue_id})
		SET d.npc_name = $npc_name,
			d.npc_role = $npc_role,
			d.start_node_id = $start_node_id,
			d.is_quest_related = $is_quest_related,
			d.version = $version,
			d.saved_at = $saved_at
		RETURN d.dialogue_id AS dialogue_id
	`

	SaveDialogueNodeQuery = `
		MERGE (n:DialogueNode {key: $key})
		SET n.dialogue_id = $dialogue_id,
			n.node_id = $node_id,
			n.node_type = $node_type,
			n.npc_text = $npc_text,
			n.emotion = $emotion,
			n.priority = $priority
		RETURN n.key AS key
	`

	SaveTerminalQuery = `
		MERGE (t:DialogueTerminal {dialogue_id: $dialogue_id})
		RETURN t.dialogue_id AS dialogue_id
	`

	SaveStartEdgeQuery = `
		MATCH (d:Dialogue {dialogue_id: $dialogue_id})
		MATCH (n:DialogueNode {key: $key})
		MERGE (d)-[:STARTS_AT]->(n)
	`

	SaveNextEdgeQuery = `
		MATCH (source:DialogueNode {key: $source_key})
		MATCH (target:DialogueNode {key: $target_key})
		MERGE (source)-[e:NEXT {branch: $branch}]->(target)
	`

	SaveNextToTerminalQuery = `
		MATCH (source:DialogueNode {key: $source_key})
		MATCH (target:DialogueTerminal {dialogue_id: $dialogue_id})
		MERGE (source)-[e:NEXT {branch: $branch}]->(target)
	`

	SaveOptionEdgeQuery = `
		MATCH (source:DialogueNode {key: $source_key})
		MATCH (target:DialogueNode {key: $target_key})
		MERGE (source)-[e:OPTION {index: $index}]->(target)
		SET e.text = $text
	`

	SaveOptionToTerminalQuery = `
		MATCH (source:DialogueNode {key: $source_key})
		MATCH (target:DialogueTerminal {dialogue_id: $dialogue_id})
		MERGE (source)-[e:OPTION {index: $index}]->(target)
		SET e.text = $text
	`
)
