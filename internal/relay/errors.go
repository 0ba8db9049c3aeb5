package relay

import (
	"errors"
	"fmt"
)

// Kind classifies relay failures. The kind drives the HTTP status and the
// user-facing message; the wrapped cause is for operator logs only.
type Kind string

const (
	// KindInvalidInput means the message was empty after trimming.
	KindInvalidInput Kind = "invalid_input"
	// KindNotConfigured means no provider credential is available.
	KindNotConfigured Kind = "not_configured"
	// KindUpstream means the provider returned a failure status.
	KindUpstream Kind = "upstream"
	// KindTransport means the provider could not be reached.
	KindTransport Kind = "transport"
)

// FallbackReply is returned as a successful reply when the provider
// nominally succeeded but produced no usable completion.
const FallbackReply = "Désolé, je n'ai pas pu générer de réponse."

// Error is a classified relay failure.
type Error struct {
	Kind Kind
	// StatusCode is the upstream HTTP status, set for KindUpstream.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("relay %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("relay %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the generic client-safe message for this failure.
// Provider internals, credentials and transport details never appear here.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindInvalidInput:
		return "Le champ 'message' est requis."
	case KindNotConfigured:
		return "Service non configuré."
	case KindUpstream:
		return "Erreur de l'assistant IA."
	case KindTransport:
		return "Erreur de communication."
	default:
		return "Erreur interne."
	}
}

// KindOf extracts the failure kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var relayErr *Error
	if errors.As(err, &relayErr) {
		return relayErr.Kind, true
	}
	return "", false
}
