package port

import (
	"context"
	"encoding/json"
)

// LLMProvider abstracts a language-model backend used for best-effort field
// enrichment. Implementations must honor ctx cancellation; callers treat any
// error as "no additional fields".
type LLMProvider interface {
	// Complete generates a plain-text completion for the prompt.
	Complete(ctx context.Context, prompt, systemPrompt string) (string, error)
	// ExtractJSON prompts the model for structured output and returns the raw
	// JSON object from the response.
	ExtractJSON(ctx context.Context, prompt, systemPrompt string) (json.RawMessage, error)
}
