// Package generator runs the full text-to-entity pipeline with bounded
// retry: prompt the model, extract and repair the JSON document, normalize
// aliases, validate types and invariants. A failure anywhere in one attempt
// discards that attempt entirely; nothing from a failed attempt leaks into
// the next one.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lunarforge/assetforge/internal/core/extract"
	"github.com/lunarforge/assetforge/internal/core/fallback"
	"github.com/lunarforge/assetforge/internal/core/model"
	"github.com/lunarforge/assetforge/internal/core/normalize"
	"github.com/lunarforge/assetforge/internal/core/validate"
)

// ErrAttemptsExhausted marks a generation that failed every attempt with
// fallback disabled.
var ErrAttemptsExhausted = errors.New("generation attempts exhausted")

// State is the terminal state of a generation run.
type State string

const (
	StateSuccess   State = "SUCCESS"
	StateExhausted State = "EXHAUSTED"
	StateFallback  State = "FALLBACK"
)

// Client produces one raw completion per call. Implementations live in the
// llm package; the mock client satisfies it too.
type Client interface {
	Generate(ctx context.Context, prompt, systemPrompt string, temperature float64) (string, error)
}

type Config struct {
	// MaxAttempts bounds the retry loop. Zero or negative means the default
	// of 3.
	MaxAttempts int
	// RetryDelay is the fixed pause between attempts. Zero disables the
	// pause. No backoff: failed attempts here are usually malformed output,
	// not load, so waiting longer buys nothing.
	RetryDelay time.Duration
	// Fallback switches exhaustion from an error into a canned record.
	Fallback bool
}

const defaultMaxAttempts = 3

type Request struct {
	Kind         model.Kind
	Prompt       string
	SystemPrompt string
	Temperature  float64
}

type Result struct {
	Entity   model.Entity
	State    State
	Attempts int
}

type Generator struct {
	client Client
	cfg    Config
	log    zerolog.Logger
}

func New(client Client, cfg Config, log zerolog.Logger) *Generator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	return &Generator{client: client, cfg: cfg, log: log}
}

// Generate runs up to MaxAttempts full pipeline passes and returns the first
// validated entity. When every attempt fails it either serves the canned
// fallback record (Fallback enabled) or returns a Result in StateExhausted
// together with an error wrapping ErrAttemptsExhausted and the last attempt
// failure. Context cancellation aborts immediately, before fallback.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	var lastErr error

	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 1 {
			if err := sleep(ctx, g.cfg.RetryDelay); err != nil {
				return nil, err
			}
		}

		entity, err := g.attempt(ctx, req)
		if err == nil {
			g.log.Info().
				Str("kind", string(req.Kind)).
				Str("name", entity.Name()).
				Int("attempt", attempt).
				Msg("generation succeeded")
			return &Result{Entity: entity, State: StateSuccess, Attempts: attempt}, nil
		}
		lastErr = err
		g.log.Warn().
			Err(err).
			Str("kind", string(req.Kind)).
			Int("attempt", attempt).
			Int("max_attempts", g.cfg.MaxAttempts).
			Msg("generation attempt failed")
	}

	if g.cfg.Fallback {
		entity, err := g.canned(req.Kind)
		if err != nil {
			return nil, err
		}
		g.log.Warn().
			Str("kind", string(req.Kind)).
			Str("name", entity.Name()).
			Int("attempts", g.cfg.MaxAttempts).
			Msg("serving fallback record")
		return &Result{Entity: entity, State: StateFallback, Attempts: g.cfg.MaxAttempts}, nil
	}

	return &Result{State: StateExhausted, Attempts: g.cfg.MaxAttempts},
		fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, g.cfg.MaxAttempts, lastErr)
}

// attempt is one complete pipeline pass.
func (g *Generator) attempt(ctx context.Context, req Request) (model.Entity, error) {
	raw, err := g.client.Generate(ctx, req.Prompt, req.SystemPrompt, req.Temperature)
	if err != nil {
		return nil, fmt.Errorf("llm call failed: %w", err)
	}

	rec, err := extract.Record(raw)
	if err != nil {
		return nil, err
	}

	rec = normalize.Record(req.Kind, rec)

	return validate.Entity(req.Kind, rec)
}

// canned validates the fallback record through the same normalizer and
// validator the live path uses.
func (g *Generator) canned(kind model.Kind) (model.Entity, error) {
	rec, err := fallback.Record(kind)
	if err != nil {
		return nil, err
	}
	rec = normalize.Record(kind, rec)
	return validate.Entity(kind, rec)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
