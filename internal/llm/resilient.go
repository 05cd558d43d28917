package llm

import (
	"context"

	"github.com/rs/zerolog"
)

// mockFallbackClient serves the canned mock response when the wrapped
// provider fails at the transport level, so a missing API key or an outage
// degrades into deterministic offline output instead of an error. The
// wrapper is stateless: every call tries the real provider first.
type mockFallbackClient struct {
	inner Client
	mock  *MockClient
	log   zerolog.Logger
}

func WithMockFallback(inner Client, log zerolog.Logger) Client {
	return &mockFallbackClient{inner: inner, mock: NewMockClient(), log: log}
}

func (c *mockFallbackClient) Generate(ctx context.Context, prompt, systemPrompt string, temperature float64) (string, error) {
	resp, err := c.inner.Generate(ctx, prompt, systemPrompt, temperature)
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	c.log.Warn().Err(err).Msg("provider call failed, serving mock response")
	return c.mock.Generate(ctx, prompt, systemPrompt, temperature)
}
