package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chronos-agency/timetravel-api/internal/relay"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
	"github.com/chronos-agency/timetravel-api/pkg/metrics"
)

var (
	// ErrNotFound reports an unknown session ID.
	ErrNotFound = errors.New("session not found")
	// ErrBusy reports a send while a previous one is still settling.
	ErrBusy = errors.New("a reply is already being generated for this session")
)

// Relayer is the part of the relay service the manager needs.
type Relayer interface {
	Relay(ctx context.Context, req relay.Request) (string, error)
}

// Manager owns all live sessions. Sends are single-flight per session: a
// second send while one is pending is rejected, which keeps history append
// order identical to send order without any completion-order bookkeeping.
//
// TODO: evict idle sessions; the map only grows for now.
type Manager struct {
	relayer Relayer
	logger  *logger.Logger

	mu       sync.Mutex
	sessions map[string]*state
}

type state struct {
	session Session
	pending bool
}

// NewManager creates a session manager.
func NewManager(relayer Relayer, log *logger.Logger) *Manager {
	return &Manager{
		relayer:  relayer,
		logger:   log,
		sessions: make(map[string]*state),
	}
}

// Create starts a new session seeded with the fixed greeting.
func (m *Manager) Create() Session {
	now := time.Now()
	sess := Session{
		ID:        uuid.Must(uuid.NewV7()).String(),
		CreatedAt: now,
		Messages: []Message{
			newMessage(RoleAssistant, Greeting, now),
		},
	}

	m.mu.Lock()
	m.sessions[sess.ID] = &state{session: sess}
	m.mu.Unlock()

	metrics.SessionsActive.Inc()
	metrics.SessionMessagesTotal.WithLabelValues(string(RoleAssistant)).Inc()

	return snapshot(sess)
}

// Get returns a snapshot of the session history.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return snapshot(st.session), nil
}

// Send appends the user message, relays it, and settles the session with
// exactly one assistant message: the real reply, or the fixed fallback
// apology when the relay fails. The updated history is returned.
//
// An empty message is rejected up front and does not touch the history.
func (m *Manager) Send(ctx context.Context, id string, req relay.Request) (Session, error) {
	trimmed := strings.TrimSpace(req.Message)
	if trimmed == "" {
		return Session{}, &relay.Error{Kind: relay.KindInvalidInput}
	}

	m.mu.Lock()
	st, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return Session{}, ErrNotFound
	}
	if st.pending {
		m.mu.Unlock()
		return Session{}, ErrBusy
	}
	st.pending = true
	st.session.Messages = append(st.session.Messages, newMessage(RoleUser, trimmed, time.Now()))
	m.mu.Unlock()

	metrics.SessionMessagesTotal.WithLabelValues(string(RoleUser)).Inc()

	reply, err := m.relayer.Relay(ctx, req)
	if err != nil {
		m.logger.Warn("relay failed, settling session with fallback reply",
			zap.String("session_id", id),
			zap.Error(err))
		reply = relay.FallbackReply
	}

	m.mu.Lock()
	st.session.Messages = append(st.session.Messages, newMessage(RoleAssistant, reply, time.Now()))
	st.pending = false
	out := snapshot(st.session)
	m.mu.Unlock()

	metrics.SessionMessagesTotal.WithLabelValues(string(RoleAssistant)).Inc()

	return out, nil
}

func newMessage(role Role, content string, at time.Time) Message {
	return Message{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Role:      role,
		Content:   content,
		CreatedAt: at,
	}
}

func snapshot(s Session) Session {
	msgs := make([]Message, len(s.Messages))
	copy(msgs, s.Messages)
	s.Messages = msgs
	return s
}
