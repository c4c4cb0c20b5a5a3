package assistant

import (
	"context"
)

// CompletionRequest is a single provider call: a system prompt, prior turns,
// and the new user message.
type CompletionRequest struct {
	System  string
	History []Message
	Message string
}

// Provider generates a chat completion. Implementations must be safe for
// concurrent use.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
