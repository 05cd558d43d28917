package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFencedBlock(t *testing.T) {
	raw := "Here is the monster you asked for:\n```json\n{\"name\": \"Goblin\"}\n```\nLet me know if you need changes."
	assert.Equal(t, `{"name": "Goblin"}`, Document(raw))
}

func TestDocumentFencedBlockWithoutTag(t *testing.T) {
	raw := "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, Document(raw))
}

func TestDocumentBareResponse(t *testing.T) {
	raw := "  {\"a\": 1}  "
	assert.Equal(t, `{"a": 1}`, Document(raw))
}

func TestDocumentStripsLeftoverFences(t *testing.T) {
	// An unterminated fence is not matched by the block pattern but the
	// leading marker must still be stripped.
	raw := "```json\n{\"a\": 1}"
	assert.Equal(t, `{"a": 1}`, Document(raw))
}

func TestDocumentEmptyResponse(t *testing.T) {
	assert.Equal(t, "", Document(""))
}

func TestRecordValidJSONSkipsRepair(t *testing.T) {
	// The apostrophe would be mangled by quote normalization; valid JSON
	// must never enter the repair chain.
	rec, err := Record(`{"name": "it's fine"}`)
	require.NoError(t, err)
	assert.Equal(t, "it's fine", rec["name"])
}

func TestRecordTrailingComma(t *testing.T) {
	rec, err := Record("```json\n{\"a\":1,}\n```")
	require.NoError(t, err)
	assert.Equal(t, float64(1), rec["a"])
}

func TestRecordSingleQuotes(t *testing.T) {
	rec, err := Record(`{'name': 'Goblin', 'level': 5}`)
	require.NoError(t, err)
	assert.Equal(t, "Goblin", rec["name"])
	assert.Equal(t, float64(5), rec["level"])
}

func TestRecordUnterminatedString(t *testing.T) {
	doc := "{\n\"level\": 5,\n\"name\": \"Goblin\n}"
	rec, err := Record(doc)
	require.NoError(t, err)
	assert.Equal(t, "Goblin", rec["name"])
	assert.Equal(t, float64(5), rec["level"])
}

func TestRecordUnbalancedBraces(t *testing.T) {
	rec, err := Record(`{"outer": {"inner": 1}`)
	require.NoError(t, err)
	inner, ok := rec["outer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), inner["inner"])
}

func TestRecordPythonLiterals(t *testing.T) {
	rec, err := Record(`{"tradable": True, "bound": False, "quest": None}`)
	require.NoError(t, err)
	assert.Equal(t, true, rec["tradable"])
	assert.Equal(t, false, rec["bound"])
	assert.Nil(t, rec["quest"])
}

func TestRecordControlCharacters(t *testing.T) {
	rec, err := Record("{\"a\": 1,\x01\x02 \"b\": 2}")
	require.NoError(t, err)
	assert.Equal(t, float64(2), rec["b"])
}

func TestRecordLastResortRepair(t *testing.T) {
	// Missing comma between members: none of the targeted heuristics fix
	// this, the general repairer does.
	rec, err := Record(`{"a": 1 "b": 2}`)
	require.NoError(t, err)
	assert.Equal(t, float64(1), rec["a"])
	assert.Equal(t, float64(2), rec["b"])
}

func TestRecordUnrecoverable(t *testing.T) {
	_, err := Record("the model refused to answer")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
	assert.NotEmpty(t, parseErr.Snippet)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseErrorLocation(t *testing.T) {
	doc := "{\n\"a\": 1,\n\"b\": oops\n}"
	var rec map[string]any
	err := json.Unmarshal([]byte(doc), &rec)
	require.Error(t, err)

	parseErr := newParseError(doc, err)
	assert.Equal(t, 3, parseErr.Line)
	assert.Contains(t, parseErr.Snippet, `"b"`)
	assert.Contains(t, parseErr.Error(), "line 3")
}
