package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarforge/assetforge/internal/core/model"
	"github.com/lunarforge/assetforge/internal/core/normalize"
	"github.com/lunarforge/assetforge/internal/core/validate"
)

// Every canned record must survive the full pipeline: callers treat fallback
// output exactly like validated generator output.
func TestFallbackRecordsValidate(t *testing.T) {
	for _, kind := range []model.Kind{model.KindMonster, model.KindItem, model.KindDialogue} {
		rec, err := Record(kind)
		require.NoError(t, err, "kind %s", kind)

		rec = normalize.Record(kind, rec)
		entity, err := validate.Entity(kind, rec)
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, kind, entity.Kind())
		assert.NotEmpty(t, entity.Name())
	}
}

func TestRecordReturnsIndependentCopies(t *testing.T) {
	a, err := Record(model.KindMonster)
	require.NoError(t, err)
	b, err := Record(model.KindMonster)
	require.NoError(t, err)

	a["name"] = "mutated"
	assert.Equal(t, "Snowpeak Troll", b["name"])
}

func TestUnknownKind(t *testing.T) {
	_, err := Document(model.Kind("spell"))
	assert.Error(t, err)

	_, err = Record(model.Kind("spell"))
	assert.Error(t, err)
}
