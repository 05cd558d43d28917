package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lunarforge/assetforge/internal/core/model"
	"github.com/lunarforge/assetforge/internal/driver"
)

// GraphStore mirrors dialogue trees into Memgraph. Nodes become
// :DialogueNode vertices keyed by "<dialogue_id>/<node_id>"; every reference
// to the END sentinel is folded into a single :DialogueTerminal vertex per
// dialogue so path queries always have a concrete endpoint.
type GraphStore struct {
	driver driver.GraphDriver
	log    zerolog.Logger
}

func NewGraphStore(d driver.GraphDriver, log zerolog.Logger) *GraphStore {
	return &GraphStore{driver: d, log: log}
}

// SaveDialogueTree replaces any previously stored version of the dialogue.
func (s *GraphStore) SaveDialogueTree(ctx context.Context, tree *model.DialogueTree) error {
	if _, err := s.driver.ExecuteQuery(ctx, driver.DeleteDialogueQuery, map[string]any{
		"dialogue_id": tree.DialogueID,
	}); err != nil {
		return fmt.Errorf("clear dialogue %s: %w", tree.DialogueID, err)
	}

	if _, err := s.driver.ExecuteQuery(ctx, driver.SaveDialogueQuery, map[string]any{
		"dialogue_id":      tree.DialogueID,
		"npc_name":         tree.NPCName,
		"npc_role":         tree.NPCRole,
		"start_node_id":    tree.StartNodeID,
		"is_quest_related": tree.IsQuestRelated,
		"version":          tree.Version,
		"saved_at":         time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("save dialogue %s: %w", tree.DialogueID, err)
	}

	ids := make(map[string]struct{}, len(tree.Nodes))
	for _, n := range tree.Nodes {
		ids[n.NodeID] = struct{}{}
		if _, err := s.driver.ExecuteQuery(ctx, driver.SaveDialogueNodeQuery, map[string]any{
			"key":         s.key(tree.DialogueID, n.NodeID),
			"dialogue_id": tree.DialogueID,
			"node_id":     n.NodeID,
			"node_type":   string(n.NodeType),
			"npc_text":    n.NPCText,
			"emotion":     n.Emotion,
			"priority":    n.Priority,
		}); err != nil {
			return fmt.Errorf("save node %s: %w", n.NodeID, err)
		}
	}

	if s.needsTerminal(tree) {
		if _, err := s.driver.ExecuteQuery(ctx, driver.SaveTerminalQuery, map[string]any{
			"dialogue_id": tree.DialogueID,
		}); err != nil {
			return fmt.Errorf("save terminal: %w", err)
		}
	}

	if _, err := s.driver.ExecuteQuery(ctx, driver.SaveStartEdgeQuery, map[string]any{
		"dialogue_id": tree.DialogueID,
		"key":         s.key(tree.DialogueID, tree.StartNodeID),
	}); err != nil {
		return fmt.Errorf("save start edge: %w", err)
	}

	for _, n := range tree.Nodes {
		if err := s.saveNodeEdges(ctx, tree, n, ids); err != nil {
			return err
		}
	}

	s.log.Info().
		Str("dialogue_id", tree.DialogueID).
		Int("nodes", len(tree.Nodes)).
		Msg("dialogue graph saved")
	return nil
}

func (s *GraphStore) saveNodeEdges(ctx context.Context, tree *model.DialogueTree, n model.DialogueNode, ids map[string]struct{}) error {
	nexts := []struct {
		target string
		branch string
	}{
		{n.NextNodeID, "next"},
		{n.TrueNextNodeID, "true"},
		{n.FalseNextNodeID, "false"},
	}
	for _, next := range nexts {
		if next.target == "" {
			continue
		}
		if err := s.saveNextEdge(ctx, tree.DialogueID, n.NodeID, next.target, next.branch, ids); err != nil {
			return err
		}
	}

	for i, opt := range n.PlayerOptions {
		params := map[string]any{
			"source_key": s.key(tree.DialogueID, n.NodeID),
			"index":      i,
			"text":       opt.Text,
		}
		query := driver.SaveOptionEdgeQuery
		if opt.NextNodeID == model.EndNodeID {
			query = driver.SaveOptionToTerminalQuery
			params["dialogue_id"] = tree.DialogueID
		} else {
			params["target_key"] = s.key(tree.DialogueID, opt.NextNodeID)
		}
		if _, err := s.driver.ExecuteQuery(ctx, query, params); err != nil {
			return fmt.Errorf("save option edge %s[%d]: %w", n.NodeID, i, err)
		}
	}
	return nil
}

// saveNextEdge skips targets that are neither a known node nor the END
// sentinel: node-level links are advisory and not validated upstream.
func (s *GraphStore) saveNextEdge(ctx context.Context, dialogueID, source, target, branch string, ids map[string]struct{}) error {
	if target == model.EndNodeID {
		_, err := s.driver.ExecuteQuery(ctx, driver.SaveNextToTerminalQuery, map[string]any{
			"source_key":  s.key(dialogueID, source),
			"dialogue_id": dialogueID,
			"branch":      branch,
		})
		if err != nil {
			return fmt.Errorf("save next edge %s->END: %w", source, err)
		}
		return nil
	}
	if _, ok := ids[target]; !ok {
		s.log.Warn().
			Str("dialogue_id", dialogueID).
			Str("source", source).
			Str("target", target).
			Msg("skipping next edge to unknown node")
		return nil
	}
	_, err := s.driver.ExecuteQuery(ctx, driver.SaveNextEdgeQuery, map[string]any{
		"source_key": s.key(dialogueID, source),
		"target_key": s.key(dialogueID, target),
		"branch":     branch,
	})
	if err != nil {
		return fmt.Errorf("save next edge %s->%s: %w", source, target, err)
	}
	return nil
}

func (s *GraphStore) needsTerminal(tree *model.DialogueTree) bool {
	for _, n := range tree.Nodes {
		if n.NextNodeID == model.EndNodeID || n.TrueNextNodeID == model.EndNodeID || n.FalseNextNodeID == model.EndNodeID {
			return true
		}
		for _, opt := range n.PlayerOptions {
			if opt.NextNodeID == model.EndNodeID {
				return true
			}
		}
	}
	return false
}

func (s *GraphStore) key(dialogueID, nodeID string) string {
	return dialogueID + "/" + nodeID
}
