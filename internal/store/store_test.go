package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarforge/assetforge/internal/core/fallback"
	"github.com/lunarforge/assetforge/internal/core/model"
	"github.com/lunarforge/assetforge/internal/core/validate"
	"github.com/lunarforge/assetforge/internal/driver"
)

func testEntity(t *testing.T, kind model.Kind) model.Entity {
	t.Helper()
	rec, err := fallback.Record(kind)
	require.NoError(t, err)
	entity, err := validate.Entity(kind, rec)
	require.NoError(t, err)
	return entity
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	root := t.TempDir()
	fs := NewFileStore(root, zerolog.Nop())
	entity := testEntity(t, model.KindMonster)

	meta, err := fs.Save(entity)
	require.NoError(t, err)

	assert.Equal(t, model.KindMonster, meta.Kind)
	assert.Equal(t, "Snowpeak Troll", meta.Name)
	assert.NotEmpty(t, meta.ID)
	assert.Contains(t, meta.File, "monsters")
	assert.Contains(t, meta.File, "snowpeak_troll")

	rec, err := fs.Load(meta.File)
	require.NoError(t, err)
	assert.Equal(t, "Snowpeak Troll", rec["name"])

	// The sidecar checksum matches the file on disk.
	data, err := os.ReadFile(meta.File)
	require.NoError(t, err)
	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), meta.SHA256)

	var sidecar SavedAsset
	sidecarData, err := os.ReadFile(meta.File + ".meta.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(sidecarData, &sidecar))
	assert.Equal(t, meta.ID, sidecar.ID)
	assert.Equal(t, meta.SHA256, sidecar.SHA256)
}

func TestFileStoreDistinctFilesPerSave(t *testing.T) {
	fs := NewFileStore(t.TempDir(), zerolog.Nop())
	entity := testEntity(t, model.KindItem)

	a, err := fs.Save(entity)
	require.NoError(t, err)
	b, err := fs.Save(entity)
	require.NoError(t, err)

	assert.NotEqual(t, a.File, b.File)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "snowpeak_troll", safeName("Snowpeak Troll"))
	assert.Equal(t, "wanderer_s_ember_charm", safeName("Wanderer's Ember Charm"))
	assert.Equal(t, "asset", safeName("!!!"))
	assert.LessOrEqual(t, len(safeName(strings.Repeat("x", 100))), 40)
}

// fakeDriver records every query the graph store issues.
type fakeDriver struct {
	queries []string
	params  []map[string]any
}

func (f *fakeDriver) ExecuteQuery(_ context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	f.queries = append(f.queries, query)
	f.params = append(f.params, params)
	return neo4j.EagerResult{}, nil
}

func (f *fakeDriver) BuildIndices(context.Context) error { return nil }
func (f *fakeDriver) Close(context.Context) error        { return nil }

func (f *fakeDriver) count(query string) int {
	n := 0
	for _, q := range f.queries {
		if q == query {
			n++
		}
	}
	return n
}

func TestGraphStoreSaveDialogueTree(t *testing.T) {
	entity := testEntity(t, model.KindDialogue)
	tree, ok := entity.(*model.DialogueTree)
	require.True(t, ok)

	fake := &fakeDriver{}
	gs := NewGraphStore(fake, zerolog.Nop())
	require.NoError(t, gs.SaveDialogueTree(context.Background(), tree))

	// Old data cleared first.
	require.NotEmpty(t, fake.queries)
	assert.Equal(t, driver.DeleteDialogueQuery, fake.queries[0])

	assert.Equal(t, 1, fake.count(driver.SaveDialogueQuery))
	assert.Equal(t, len(tree.Nodes), fake.count(driver.SaveDialogueNodeQuery))
	assert.Equal(t, 1, fake.count(driver.SaveStartEdgeQuery))

	// The canned tree ends on an explicit end node, never the END sentinel,
	// so no terminal vertex is needed.
	assert.Zero(t, fake.count(driver.SaveTerminalQuery))
	assert.Equal(t, 2, fake.count(driver.SaveOptionEdgeQuery))
	assert.Equal(t, 2, fake.count(driver.SaveNextEdgeQuery))
}

func TestGraphStoreEndSentinelFoldsIntoTerminal(t *testing.T) {
	tree := &model.DialogueTree{
		DialogueID:  "test_tree",
		NPCName:     "Guard",
		StartNodeID: "a",
		Nodes: []model.DialogueNode{
			{
				NodeID:   "a",
				NodeType: model.NodePlayerChoice,
				PlayerOptions: []model.DialogueOption{
					{Text: "Bye.", NextNodeID: model.EndNodeID},
				},
			},
		},
	}

	fake := &fakeDriver{}
	gs := NewGraphStore(fake, zerolog.Nop())
	require.NoError(t, gs.SaveDialogueTree(context.Background(), tree))

	assert.Equal(t, 1, fake.count(driver.SaveTerminalQuery))
	assert.Equal(t, 1, fake.count(driver.SaveOptionToTerminalQuery))
	assert.Zero(t, fake.count(driver.SaveOptionEdgeQuery))
}

func TestGraphStoreSkipsUnknownNextTarget(t *testing.T) {
	tree := &model.DialogueTree{
		DialogueID:  "test_tree",
		NPCName:     "Guard",
		StartNodeID: "a",
		Nodes: []model.DialogueNode{
			{NodeID: "a", NodeType: model.NodeNPCSpeech, NPCText: "Halt.", NextNodeID: "ghost"},
		},
	}

	fake := &fakeDriver{}
	gs := NewGraphStore(fake, zerolog.Nop())
	require.NoError(t, gs.SaveDialogueTree(context.Background(), tree))

	assert.Zero(t, fake.count(driver.SaveNextEdgeQuery))
	assert.Zero(t, fake.count(driver.SaveTerminalQuery))
}
