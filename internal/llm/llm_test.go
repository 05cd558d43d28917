package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarforge/assetforge/internal/config"
	"github.com/lunarforge/assetforge/internal/core/extract"
	"github.com/lunarforge/assetforge/internal/core/model"
)

func TestMockClientKindSelection(t *testing.T) {
	cases := []struct {
		prompt string
		name   string
	}{
		{"Create a monster for a snowy mountain region", "Snowpeak Troll"},
		{"Create a weapon item for a level 40 paladin", "Wanderer's Ember Charm"},
		{"Write an NPC dialogue tree for a village blacksmith", "Mira"},
	}

	mock := NewMockClient()
	for _, tc := range cases {
		resp, err := mock.Generate(context.Background(), tc.prompt, "", 0.8)
		require.NoError(t, err, tc.prompt)

		rec, err := extract.Record(resp)
		require.NoError(t, err, tc.prompt)
		assert.Equal(t, tc.name, rec["name"], tc.prompt)
	}
}

func TestMockClientDeterministic(t *testing.T) {
	mock := NewMockClient()
	a, err := mock.Generate(context.Background(), "a monster", "", 0.2)
	require.NoError(t, err)
	b, err := mock.Generate(context.Background(), "a monster", "", 1.2)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

type failingClient struct {
	calls int
	err   error
}

func (c *failingClient) Generate(context.Context, string, string, float64) (string, error) {
	c.calls++
	return "", c.err
}

func TestMockFallbackServesMockOnTransportError(t *testing.T) {
	inner := &failingClient{err: errors.New("connection refused")}
	client := WithMockFallback(inner, zerolog.Nop())

	resp, err := client.Generate(context.Background(), "a monster for the tundra", "", 0.8)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	rec, err := extract.Record(resp)
	require.NoError(t, err)
	assert.Equal(t, "Snowpeak Troll", rec["name"])
}

func TestMockFallbackPassesThroughSuccess(t *testing.T) {
	inner := &staticClient{text: "real output"}
	client := WithMockFallback(inner, zerolog.Nop())

	resp, err := client.Generate(context.Background(), "p", "s", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "real output", resp)
}

func TestMockFallbackRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &failingClient{err: context.Canceled}
	client := WithMockFallback(inner, zerolog.Nop())

	_, err := client.Generate(ctx, "p", "", 0.5)
	assert.ErrorIs(t, err, context.Canceled)
}

type staticClient struct {
	text string
}

func (c *staticClient) Generate(context.Context, string, string, float64) (string, error) {
	return c.text, nil
}

func TestFactoryMockProvider(t *testing.T) {
	client, err := NewClient(context.Background(), config.LLMConfig{Provider: "mock"})
	require.NoError(t, err)
	_, ok := client.(*MockClient)
	assert.True(t, ok)
}

func TestFactoryUnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), config.LLMConfig{Provider: "quantum"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported llm provider")
}

func TestGuessKind(t *testing.T) {
	assert.Equal(t, model.KindDialogue, guessKind("npc conversation about quests"))
	assert.Equal(t, model.KindItem, guessKind("legendary armor piece"))
	assert.Equal(t, model.KindMonster, guessKind("something scary in the woods"))
}
