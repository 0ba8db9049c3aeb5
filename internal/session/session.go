// Package session holds ephemeral per-conversation chat state.
package session

import (
	"time"
)

// Role identifies a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting is the fixed assistant message every new session starts with.
const Greeting = "Bonjour ! Je suis votre agent temporel. 🕰️ Comment puis-je vous aider à planifier votre prochain voyage dans le temps ?"

// Message is one entry in a session's history. Messages are never mutated
// after creation.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is an append-only conversation snapshot. History lives in memory
// for the lifetime of the session and is never durably persisted.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Messages  []Message `json:"messages"`
}
