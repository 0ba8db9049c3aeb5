// Package llm provides completion provider clients.
package llm

import (
	"context"
	"fmt"
)

// Request is a single chat-completion request.
type Request struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Response is a normalized completion response. Content may be empty when the
// provider nominally succeeded but returned an unexpected shape; callers
// decide how to degrade.
type Response struct {
	Content   string
	Model     string
	TokensIn  int
	TokensOut int
}

// UpstreamError reports a non-success status returned by the provider.
// Anything else coming back from Complete is a transport failure.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}

// Client is the interface for completion providers.
type Client interface {
	// Complete sends one completion request and returns the response.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name.
	Name() string
}

// Provider is the type of completion provider.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// NewClient creates a client for the given provider.
func NewClient(provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey)
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
