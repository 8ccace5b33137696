package llm

import (
	"context"
	"errors"
)

// ErrUpstream marks failures coming back from the hosted model provider
// (non-2xx responses, transport errors). Callers use it to distinguish
// "provider is down" from local failures.
var ErrUpstream = errors.New("llm provider error")

// Client is a single-shot chat completion: one system prompt, one user
// prompt, one text response. A request is a single attempt with no retry.
type Client interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Sampling parameters shared by all providers. The planner needs mild
// variety but a stable schedule shape, hence the low temperature.
const (
	defaultTemperature = 0.5
	defaultMaxTokens   = 4000
)
