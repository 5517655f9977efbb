package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"doctriage/internal/port"
)

// circuitState tracks rate-limit backoff for a single provider.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackProvider tries providers in order, skipping those with open
// rate-limit circuits. It implements port.LLMProvider.
type FallbackProvider struct {
	providers []port.LLMProvider
	circuits  []*circuitState
	names     []string
}

// NewFallbackProvider creates a FallbackProvider from an ordered list of
// providers and their names.
func NewFallbackProvider(providers []port.LLMProvider, names []string) *FallbackProvider {
	circuits := make([]*circuitState, len(providers))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackProvider{
		providers: providers,
		circuits:  circuits,
		names:     names,
	}
}

// Complete tries each healthy provider in order and returns the first
// successful completion.
func (f *FallbackProvider) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	var out string
	err := f.each(ctx, func(ctx context.Context, p port.LLMProvider) error {
		var err error
		out, err = p.Complete(ctx, prompt, systemPrompt)
		return err
	})
	return out, err
}

// ExtractJSON tries each healthy provider in order and returns the first
// successful JSON extraction.
func (f *FallbackProvider) ExtractJSON(ctx context.Context, prompt, systemPrompt string) (json.RawMessage, error) {
	var out json.RawMessage
	err := f.each(ctx, func(ctx context.Context, p port.LLMProvider) error {
		var err error
		out, err = p.ExtractJSON(ctx, prompt, systemPrompt)
		return err
	})
	return out, err
}

func (f *FallbackProvider) each(ctx context.Context, call func(context.Context, port.LLMProvider) error) error {
	now := time.Now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, p := range f.providers {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			log.Printf("llm.FallbackProvider: skipping %s (circuit open until %s)", f.names[i], resetAt.Format(time.RFC3339))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		err := call(ctx, p)
		if err == nil {
			return nil
		}

		log.Printf("llm.FallbackProvider: %s failed: %v", f.names[i], err)
		lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	if lastErr == nil || allRateLimited {
		// Everything was skipped or rate limited.
		retryAfter := time.Until(earliestReset)
		if retryAfter < 0 {
			retryAfter = time.Second
		}
		return NewRateLimitError("all", fmt.Errorf("all providers rate limited"), int(retryAfter.Seconds()))
	}

	return fmt.Errorf("all providers failed: %w", lastErr)
}
