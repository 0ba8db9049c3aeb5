package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/chronos-agency/timetravel-api/internal/relay"
	"github.com/chronos-agency/timetravel-api/internal/session"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
)

type fakeRelayer struct {
	reply   string
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeRelayer) Relay(ctx context.Context, req relay.Request) (string, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return "", f.err
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "Réponse à: " + req.Message, nil
}

func TestCreateSeedsGreeting(t *testing.T) {
	mgr := session.NewManager(&fakeRelayer{}, logger.NewNop())

	sess := mgr.Create()
	if sess.ID == "" {
		t.Fatal("expected a session ID")
	}
	if len(sess.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sess.Messages))
	}
	if sess.Messages[0].Role != session.RoleAssistant {
		t.Fatalf("greeting role: got %s", sess.Messages[0].Role)
	}
	if sess.Messages[0].Content != session.Greeting {
		t.Fatalf("greeting content: got %q", sess.Messages[0].Content)
	}
}

func TestSendAppendsInOrder(t *testing.T) {
	mgr := session.NewManager(&fakeRelayer{}, logger.NewNop())
	sess := mgr.Create()

	const n = 3
	for i := 0; i < n; i++ {
		msg := fmt.Sprintf("question %d", i)
		updated, err := mgr.Send(context.Background(), sess.ID, relay.Request{Message: msg})
		if err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
		if got, want := len(updated.Messages), 2*(i+1)+1; got != want {
			t.Fatalf("Send %d: history length %d, want %d", i, got, want)
		}
	}

	final, err := mgr.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got, want := len(final.Messages), 2*n+1; got != want {
		t.Fatalf("history length %d, want %d", got, want)
	}

	// Greeting, then strictly alternating user/assistant pairs in send order.
	for i := 0; i < n; i++ {
		user := final.Messages[1+2*i]
		assistant := final.Messages[2+2*i]
		if user.Role != session.RoleUser || user.Content != fmt.Sprintf("question %d", i) {
			t.Fatalf("message %d: got %s %q", 1+2*i, user.Role, user.Content)
		}
		if assistant.Role != session.RoleAssistant {
			t.Fatalf("message %d: got role %s", 2+2*i, assistant.Role)
		}
	}
}

func TestSendSettlesWithFallbackOnRelayFailure(t *testing.T) {
	relayer := &fakeRelayer{err: &relay.Error{Kind: relay.KindTransport, Err: errors.New("boom")}}
	mgr := session.NewManager(relayer, logger.NewNop())
	sess := mgr.Create()

	updated, err := mgr.Send(context.Background(), sess.ID, relay.Request{Message: "Bonjour"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := len(updated.Messages); got != 3 {
		t.Fatalf("history length %d, want 3", got)
	}

	last := updated.Messages[2]
	if last.Role != session.RoleAssistant || last.Content != relay.FallbackReply {
		t.Fatalf("expected fallback apology, got %s %q", last.Role, last.Content)
	}
}

func TestSendRejectsEmptyMessageWithoutAppending(t *testing.T) {
	mgr := session.NewManager(&fakeRelayer{}, logger.NewNop())
	sess := mgr.Create()

	_, err := mgr.Send(context.Background(), sess.ID, relay.Request{Message: "   "})
	kind, ok := relay.KindOf(err)
	if !ok || kind != relay.KindInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}

	got, _ := mgr.Get(sess.ID)
	if len(got.Messages) != 1 {
		t.Fatalf("history mutated by rejected send: %d messages", len(got.Messages))
	}
}

func TestSendUnknownSession(t *testing.T) {
	mgr := session.NewManager(&fakeRelayer{}, logger.NewNop())

	_, err := mgr.Send(context.Background(), "missing", relay.Request{Message: "Bonjour"})
	if !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := mgr.Get("missing"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSendIsSingleFlightPerSession(t *testing.T) {
	relayer := &fakeRelayer{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	mgr := session.NewManager(relayer, logger.NewNop())
	sess := mgr.Create()

	done := make(chan error, 1)
	go func() {
		_, err := mgr.Send(context.Background(), sess.ID, relay.Request{Message: "premier"})
		done <- err
	}()

	select {
	case <-relayer.started:
	case <-time.After(time.Second):
		t.Fatal("first send never reached the relay")
	}

	// While the first send is in flight, a second one must be rejected.
	if _, err := mgr.Send(context.Background(), sess.ID, relay.Request{Message: "second"}); !errors.Is(err, session.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(relayer.release)
	if err := <-done; err != nil {
		t.Fatalf("first send failed: %v", err)
	}

	got, _ := mgr.Get(sess.ID)
	if len(got.Messages) != 3 {
		t.Fatalf("history length %d, want 3", len(got.Messages))
	}

	// The session accepts sends again once settled.
	if _, err := mgr.Send(context.Background(), sess.ID, relay.Request{Message: "troisième"}); err != nil {
		t.Fatalf("send after settle: %v", err)
	}
}
