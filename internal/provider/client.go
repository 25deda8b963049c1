// Package provider wraps the external completion providers. A nil
// Client means the service runs in offline mode; provider failures
// degrade to the template path and are never surfaced to end users.
package provider

import "context"

// ChunkFunc receives each partial output span during streaming.
type ChunkFunc func(delta string, index int) error

// Message is one chat turn sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a completion request.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Result is a finished completion.
type Result struct {
	Content    string
	Model      string
	TokensIn   int
	TokensOut  int
	StopReason string
	LatencyMs  int64
}

// Client is the completion provider interface.
type Client interface {
	// Complete returns the full completion in one call.
	Complete(ctx context.Context, req *Request) (*Result, error)

	// Stream delivers the completion incrementally through fn.
	Stream(ctx context.Context, req *Request, fn ChunkFunc) (*Result, error)

	// Name returns the provider name for logs and metrics.
	Name() string
}

// New creates a client for the named provider.
func New(name, apiKey string) (Client, error) {
	switch name {
	case "anthropic":
		return NewAnthropicClient(apiKey)
	default:
		return NewOpenAIClient(apiKey)
	}
}
