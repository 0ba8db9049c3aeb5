package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
	"github.com/chronos-agency/timetravel-api/internal/handler"
	"github.com/chronos-agency/timetravel-api/internal/llm"
	"github.com/chronos-agency/timetravel-api/internal/quiz"
	"github.com/chronos-agency/timetravel-api/internal/relay"
	"github.com/chronos-agency/timetravel-api/internal/session"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
)

type stubClient struct {
	resp *llm.Response
	err  error
}

func (s *stubClient) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubClient) Name() string { return "stub" }

func newTestRouter(t *testing.T, client llm.Client) http.Handler {
	t.Helper()

	log := logger.NewNop()
	cat := catalog.Default()

	engine, err := quiz.NewEngine(cat)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	relaySvc := relay.New(client, cat, relay.DefaultPolicy(), relay.DefaultCompletion(), log, nil)

	return handler.NewRouter(handler.RouterConfig{
		Logger:   log,
		Relay:    relaySvc,
		Sessions: session.NewManager(relaySvc, log),
		Quiz:     engine,
		Catalog:  cat,
		Events:   nil,
	})
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return out
}

func TestChatReturnsReply(t *testing.T) {
	router := newTestRouter(t, &stubClient{resp: &llm.Response{Content: "Bonjour ! Paris 1889 commence à 2 450 €."}})

	resp := postJSON(t, router, "/api/chat", map[string]any{
		"message":         "Quel budget prévoir ?",
		"destinationSlug": "paris-1889",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["reply"] == "" {
		t.Fatal("expected a reply")
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	router := newTestRouter(t, &stubClient{resp: &llm.Response{Content: "ok"}})

	for _, message := range []string{"", "   "} {
		resp := postJSON(t, router, "/api/chat", map[string]any{"message": message})
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("message %q: status %d", message, resp.Code)
		}
		body := decodeBody(t, resp)
		if body["error"] != "Le champ 'message' est requis." {
			t.Fatalf("message %q: error %v", message, body["error"])
		}
	}
}

func TestChatMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, &stubClient{resp: &llm.Response{Content: "ok"}})

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["error"] == nil {
		t.Fatal("expected a JSON error body")
	}
}

func TestChatPreflight(t *testing.T) {
	router := newTestRouter(t, &stubClient{resp: &llm.Response{Content: "ok"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code >= 300 {
		t.Fatalf("preflight status %d", resp.Code)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("preflight body %q, want empty", resp.Body.String())
	}
}

func TestChatNotConfigured(t *testing.T) {
	router := newTestRouter(t, nil)

	resp := postJSON(t, router, "/api/chat", map[string]any{"message": "Bonjour"})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Service non configuré." {
		t.Fatalf("error %v", body["error"])
	}
}

func TestChatUpstreamFailureStaysGeneric(t *testing.T) {
	router := newTestRouter(t, &stubClient{err: &llm.UpstreamError{StatusCode: 500, Message: "internal provider detail sk-secret"}})

	resp := postJSON(t, router, "/api/chat", map[string]any{"message": "Bonjour"})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "sk-secret") {
		t.Fatalf("response leaked upstream detail: %s", resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["error"] != "Erreur de l'assistant IA." {
		t.Fatalf("error %v", body["error"])
	}
}

func TestQuizRecommend(t *testing.T) {
	router := newTestRouter(t, nil)

	resp := postJSON(t, router, "/api/quiz/recommend", map[string]any{
		"answers": []string{"high", "adventure", "1day", "premium", "nature"},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", resp.Code, resp.Body.String())
	}

	var out handler.RecommendResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Destination.Slug != "cretace" {
		t.Fatalf("destination %s, want cretace", out.Destination.Slug)
	}
	if len(out.Itinerary) == 0 {
		t.Fatal("expected an itinerary")
	}
}

func TestQuizRecommendRejectsMalformedAnswers(t *testing.T) {
	router := newTestRouter(t, nil)

	resp := postJSON(t, router, "/api/quiz/recommend", map[string]any{
		"answers": []string{"high", "adventure"},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status %d", resp.Code)
	}

	resp = postJSON(t, router, "/api/quiz/recommend", map[string]any{
		"answers": []string{"extreme", "adventure", "1day", "premium", "nature"},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status %d", resp.Code)
	}
}

func TestQuizQuestions(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/quiz/questions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status %d", resp.Code)
	}

	var out struct {
		Questions []quiz.Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Questions) != len(quiz.Questions) {
		t.Fatalf("got %d questions, want %d", len(out.Questions), len(quiz.Questions))
	}
}

func TestDestinations(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status %d", resp.Code)
	}

	var out struct {
		Destinations []catalog.Destination `json:"destinations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Destinations) != 3 {
		t.Fatalf("got %d destinations", len(out.Destinations))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/destinations/cretace", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/destinations/atlantide", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status %d", resp.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	router := newTestRouter(t, &stubClient{resp: &llm.Response{Content: "Avec plaisir !"}})

	// Create: history starts with the greeting.
	resp := postJSON(t, router, "/api/sessions", map[string]any{})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create status %d", resp.Code)
	}
	var sess session.Session
	if err := json.Unmarshal(resp.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if len(sess.Messages) != 1 || sess.Messages[0].Content != session.Greeting {
		t.Fatalf("unexpected initial history: %+v", sess.Messages)
	}

	// Two settled sends leave 2N+1 = 5 messages.
	for i := 0; i < 2; i++ {
		resp = postJSON(t, router, "/api/sessions/"+sess.ID+"/messages", map[string]any{
			"message": "Quels sont les risques ?",
		})
		if resp.Code != http.StatusOK {
			t.Fatalf("send %d status %d, body %s", i, resp.Code, resp.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sess.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if len(sess.Messages) != 5 {
		t.Fatalf("history length %d, want 5", len(sess.Messages))
	}

	// Unknown session.
	resp = postJSON(t, router, "/api/sessions/inconnue/messages", map[string]any{"message": "Bonjour"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown session status %d", resp.Code)
	}
}
