// Package events publishes fire-and-forget diagnostic events to NATS.
//
// Events are operator telemetry only: publishing is best-effort, nothing in
// the request path depends on delivery, and no durable stream is used. A nil
// *Publisher is valid and drops everything, so callers never need to branch
// on whether the event bus is configured.
package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/chronos-agency/timetravel-api/pkg/logger"
)

const (
	// SubjectChatRelayed is published after each successful relay call.
	SubjectChatRelayed = "chronos.chat.relayed"
	// SubjectChatFailed is published on each relay failure.
	SubjectChatFailed = "chronos.chat.failed"
	// SubjectQuizRecommended is published for each computed recommendation.
	SubjectQuizRecommended = "chronos.quiz.recommended"
)

// Publisher wraps a core NATS connection.
type Publisher struct {
	conn   *nats.Conn
	logger *logger.Logger
}

// Connect establishes a NATS connection for event publishing.
func Connect(url, token string, log *logger.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected")
		}),
	}

	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}

	return &Publisher{conn: nc, logger: log}, nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}

// IsConnected returns true when the event bus is reachable.
func (p *Publisher) IsConnected() bool {
	return p != nil && p.conn != nil && p.conn.IsConnected()
}

// ChatRelayed records a settled relay call.
func (p *Publisher) ChatRelayed(model string, latencyMs int64) {
	p.publish(SubjectChatRelayed, map[string]any{
		"model":      model,
		"latency_ms": latencyMs,
		"at":         time.Now().UTC(),
	})
}

// ChatFailed records a relay failure by kind.
func (p *Publisher) ChatFailed(kind string) {
	p.publish(SubjectChatFailed, map[string]any{
		"kind": kind,
		"at":   time.Now().UTC(),
	})
}

// QuizRecommended records a computed recommendation.
func (p *Publisher) QuizRecommended(slug string) {
	p.publish(SubjectQuizRecommended, map[string]any{
		"destination": slug,
		"at":          time.Now().UTC(),
	})
}

func (p *Publisher) publish(subject string, payload map[string]any) {
	if p == nil || p.conn == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("failed to marshal event", zap.String("subject", subject), zap.Error(err))
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn("failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
