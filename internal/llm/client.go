// Package llm holds the provider clients used to generate asset documents.
// Every provider is reduced to a single text-in/text-out call; prompt
// construction and output parsing live elsewhere.
package llm

import (
	"context"
)

// Client produces one raw completion. The system prompt carries the format
// contract for the requested asset kind; temperature is passed through to
// the provider unchanged.
type Client interface {
	Generate(ctx context.Context, prompt, systemPrompt string, temperature float64) (string, error)
}
