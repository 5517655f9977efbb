package llm_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"doctriage/internal/llm"
)

func TestNewRateLimitError(t *testing.T) {
	base := errors.New("429 too many requests")
	err := llm.NewRateLimitError("openai", base, 30)

	assert.Equal(t, "openai", err.Provider)
	assert.Equal(t, 30*time.Second, err.RetryAfter)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "openai rate limited")
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	err := llm.NewRateLimitError("anthropic", errors.New("429"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
}

func TestRateLimitError_ErrorsAs(t *testing.T) {
	wrapped := llm.NewRateLimitError("google", errors.New("429"), 10)

	var rlErr *llm.RateLimitError
	assert.True(t, errors.As(wrapped, &rlErr))
	assert.Equal(t, "google", rlErr.Provider)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, llm.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, llm.ParseRetryAfterHeader("Wed, 21 Oct 2026 07:28:00 GMT"))
	assert.Equal(t, 120, llm.ParseRetryAfterHeader("120"))
}
