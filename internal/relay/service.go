// Package relay turns a user message plus optional session context into a
// single completion request and a normalized reply.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
	"github.com/chronos-agency/timetravel-api/internal/events"
	"github.com/chronos-agency/timetravel-api/internal/llm"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
	"github.com/chronos-agency/timetravel-api/pkg/metrics"
)

// Policy bounds the upstream call. The default matches observed production
// behavior: one attempt, finite timeout. Retries apply to transport failures
// only; provider rejections are never retried.
type Policy struct {
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultPolicy returns the single-attempt, bounded-timeout policy.
func DefaultPolicy() Policy {
	return Policy{
		Timeout:     30 * time.Second,
		MaxAttempts: 1,
		Backoff:     500 * time.Millisecond,
	}
}

// Completion holds the fixed sampling settings for every relay call.
type Completion struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// DefaultCompletion returns the production sampling settings.
func DefaultCompletion() Completion {
	return Completion{
		MaxTokens:   450,
		Temperature: 0.7,
	}
}

// Request is one relay invocation. DestinationSlug and QuizResult are opaque
// context annotations and are not validated against the catalog.
type Request struct {
	Message         string
	DestinationSlug string
	QuizResult      json.RawMessage
}

// Service relays chat messages to a completion provider. It is stateless and
// safe for concurrent use.
type Service struct {
	client     llm.Client
	policy     Policy
	completion Completion
	system     string
	logger     *logger.Logger
	events     *events.Publisher
}

// New creates a relay service. A nil client means no provider credential was
// configured; every call will then fail with KindNotConfigured.
func New(client llm.Client, cat *catalog.Catalog, policy Policy, completion Completion, log *logger.Logger, pub *events.Publisher) *Service {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	return &Service{
		client:     client,
		policy:     policy,
		completion: completion,
		system:     SystemPrompt(cat),
		logger:     log,
		events:     pub,
	}
}

// Configured reports whether a provider credential is available.
func (s *Service) Configured() bool {
	return s.client != nil
}

// Relay validates the message, assembles the prompt and performs the
// upstream call. On success the reply text is returned; a nominally
// successful but empty completion degrades to FallbackReply instead of an
// error.
func (s *Service) Relay(ctx context.Context, req Request) (string, error) {
	start := time.Now()

	trimmed := strings.TrimSpace(req.Message)
	if trimmed == "" {
		return "", s.fail(&Error{Kind: KindInvalidInput})
	}

	if s.client == nil {
		s.logger.Error("relay not configured: provider API key is missing")
		return "", s.fail(&Error{Kind: KindNotConfigured})
	}

	llmReq := &llm.Request{
		Model:       s.completion.Model,
		System:      s.system,
		User:        userContent(trimmed, req.DestinationSlug, req.QuizResult),
		MaxTokens:   s.completion.MaxTokens,
		Temperature: s.completion.Temperature,
	}

	resp, err := s.complete(ctx, llmReq)
	if err != nil {
		relayErr := s.classify(err)
		s.logFailure(relayErr)
		return "", s.fail(relayErr)
	}

	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		s.logger.Warn("provider returned an empty completion, substituting fallback reply",
			zap.String("model", resp.Model))
		reply = FallbackReply
	}

	latency := time.Since(start)
	metrics.RecordRelay("success", latency.Seconds())
	metrics.RecordCompletionTokens(resp.Model, resp.TokensIn, resp.TokensOut)
	s.events.ChatRelayed(resp.Model, latency.Milliseconds())

	return reply, nil
}

// complete performs the upstream call under the policy: per-attempt timeout,
// exponential backoff between attempts, transport failures only.
func (s *Service) complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	var resp *llm.Response

	operation := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.policy.Timeout)
		defer cancel()

		r, err := s.client.Complete(attemptCtx, req)
		if err != nil {
			var upstream *llm.UpstreamError
			if errors.As(err, &upstream) {
				return backoff.Permanent(err)
			}
			return err
		}

		resp = r
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.policy.Backoff

	policy := backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(s.policy.MaxAttempts-1)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Service) classify(err error) *Error {
	var upstream *llm.UpstreamError
	if errors.As(err, &upstream) {
		return &Error{Kind: KindUpstream, StatusCode: upstream.StatusCode, Err: err}
	}
	return &Error{Kind: KindTransport, Err: err}
}

func (s *Service) logFailure(err *Error) {
	switch err.Kind {
	case KindUpstream:
		s.logger.Error("completion provider rejected the request",
			zap.Int("status", err.StatusCode),
			zap.Error(err.Err))
	case KindTransport:
		s.logger.Error("failed to reach completion provider", zap.Error(err.Err))
	}
}

func (s *Service) fail(err *Error) *Error {
	metrics.RecordRelayFailure(string(err.Kind))
	s.events.ChatFailed(string(err.Kind))
	return err
}
