package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the Unavailable client.
var ErrNotConfigured = errors.New("llm: no provider configured")

// Unavailable is the client used when no provider API key is configured.
// Every call fails, which surfaces to users as the assistant's fixed
// fallback answers rather than a broken server.
type Unavailable struct{}

func (Unavailable) Complete(context.Context, *CompletionRequest) (*CompletionResponse, error) {
	return nil, ErrNotConfigured
}

func (Unavailable) Name() string { return "unavailable" }

func (Unavailable) Models() []string { return nil }
