// Package llm talks to an OpenAI-compatible chat-completions API on
// behalf of the advisory service.
package llm

import "context"

// Role constants for chat messages.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Provider is the interface for upstream completion providers. The
// advisory service depends on this, not on the concrete client, so tests
// inject stubs and the fallback path needs no network.
type Provider interface {
	// Complete sends a system prompt and a user prompt and returns the
	// assistant's text. Implementations must be safe for concurrent use.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Static is a Provider that always returns the same text (or error).
// Used in tests and local development.
type Static struct {
	Text string
	Err  error
}

func (s Static) Complete(_ context.Context, _, _ string) (string, error) {
	return s.Text, s.Err
}

var _ Provider = Static{}
