package llm

import (
	"context"
	"strings"

	"github.com/lunarforge/assetforge/internal/core/fallback"
	"github.com/lunarforge/assetforge/internal/core/model"
)

// MockClient is a deterministic offline provider. It inspects the prompt to
// decide which asset kind is being requested and replies with the canned
// document for that kind, fenced the way a real model would fence it. Useful
// for development without API keys and as the safety net behind
// WithMockFallback.
type MockClient struct{}

func NewMockClient() *MockClient { return &MockClient{} }

func (c *MockClient) Generate(_ context.Context, prompt, systemPrompt string, _ float64) (string, error) {
	doc, err := fallback.Document(guessKind(prompt + " " + systemPrompt))
	if err != nil {
		return "", err
	}
	return "```json\n" + doc + "\n```", nil
}

func guessKind(text string) model.Kind {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "dialogue") || strings.Contains(text, "conversation") || strings.Contains(text, "npc"):
		return model.KindDialogue
	case strings.Contains(text, "monster") || strings.Contains(text, "creature") || strings.Contains(text, "beast"):
		return model.KindMonster
	case strings.Contains(text, "item") || strings.Contains(text, "weapon") ||
		strings.Contains(text, "armor") || strings.Contains(text, "equipment"):
		return model.KindItem
	default:
		return model.KindMonster
	}
}
