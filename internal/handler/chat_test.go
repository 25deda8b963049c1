package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akaki911/aispace-sub003/internal/corpus"
	"github.com/akaki911/aispace-sub003/internal/intent"
	"github.com/akaki911/aispace-sub003/internal/locale"
	"github.com/akaki911/aispace-sub003/internal/memory"
	"github.com/akaki911/aispace-sub003/internal/model"
	"github.com/akaki911/aispace-sub003/internal/orchestrator"
	"github.com/akaki911/aispace-sub003/internal/pending"
	"github.com/akaki911/aispace-sub003/internal/responder"
	"github.com/akaki911/aispace-sub003/pkg/logger"
)

func newTestOrchestrator(t *testing.T) *orchestrator.Orchestrator {
	t.Helper()

	loc, err := locale.New("ka", "")
	if err != nil {
		t.Fatalf("locale.New: %v", err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "content.md"), []byte("Old Cottage"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store := memory.NewMemStore()
	return orchestrator.New(
		intent.NewClassifier(intent.NewGreetingGate(store)),
		pending.NewTracker(store, 0),
		corpus.NewSearcher(dir),
		responder.NewBuilder(loc),
		logger.NewNop(),
	)
}

func newChatHandler(t *testing.T) *ChatHandler {
	t.Helper()
	return NewChatHandler(newTestOrchestrator(t), "ka", logger.NewNop())
}

func postChat(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestChatRejectsInvalidJSON(t *testing.T) {
	h := newChatHandler(t)

	rec := postChat(t, h.Chat, "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp model.ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("success = true on a 400")
	}
	if len(resp.Issues) != 1 || resp.Issues[0].Field != "body" {
		t.Errorf("issues = %+v", resp.Issues)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	h := newChatHandler(t)

	rec := postChat(t, h.Chat, `{"message":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp model.ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Issues) != 1 || resp.Issues[0].Field != "message" {
		t.Errorf("issues = %+v", resp.Issues)
	}
	if resp.Timestamp == "" {
		t.Error("timestamp missing")
	}
}

func TestChatPublicEnvelope(t *testing.T) {
	h := newChatHandler(t)

	rec := postChat(t, h.Chat, `{"message":"გამარჯობა","audience":"public_front"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Response-Format"); got != ResponseFormatHeader {
		t.Errorf("X-Response-Format = %q", got)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The public surface is flat text, never structured sections.
	var text string
	if err := json.Unmarshal(raw["response"], &text); err != nil {
		t.Fatalf("response is not a string: %s", raw["response"])
	}
	if text == "" {
		t.Error("empty public response")
	}
	if _, ok := raw["metadata"]; ok {
		t.Error("public envelope leaks metadata")
	}
	if _, ok := raw["quickPicks"]; !ok {
		t.Error("greeting should carry quick picks")
	}
}

func TestChatAdminEnvelope(t *testing.T) {
	h := newChatHandler(t)

	body := `{"message":"how much is a cottage?","personalId":"u1",` +
		`"conversationHistory":[{"role":"user","content":"hi"}]}`
	rec := postChat(t, h.ChatAdmin, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp model.AdminChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if len(resp.Response) != 1 {
		t.Fatalf("language blocks = %d, want 1", len(resp.Response))
	}
	if len(resp.Response[0].Sections) == 0 {
		t.Error("admin reply has no sections")
	}
	if resp.Metadata == nil || resp.Metadata.Intent != "pricing" {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
	if resp.Metadata.Telemetry.IntentDetected != string(model.IntentPricing) {
		t.Errorf("telemetry intent = %q", resp.Metadata.Telemetry.IntentDetected)
	}
	if resp.ConversationHistoryLength != 1 {
		t.Errorf("historyLength = %d, want 1", resp.ConversationHistoryLength)
	}
}

func TestChatAdminOverridesRequestedAudience(t *testing.T) {
	h := newChatHandler(t)

	// The authenticated surface always responds with the admin shape.
	rec := postChat(t, h.ChatAdmin, `{"message":"hello","audience":"public_front"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp model.AdminChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Metadata == nil {
		t.Error("forced admin reply missing metadata")
	}
}

func TestChatLanguageFromMetadata(t *testing.T) {
	h := newChatHandler(t)

	rec := postChat(t, h.Chat,
		`{"message":"hello","audience":"public_front","metadata":{"language":"en"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp model.PublicChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Contains([]byte(resp.Response), []byte("Welcome!")) {
		t.Errorf("response = %q, want English greeting", resp.Response)
	}
}

func TestHealthEndpoints(t *testing.T) {
	h := NewHealthHandler(nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("ready(no checker) = %d, want 200", rec.Code)
	}

	h = NewHealthHandler(unhealthyChecker{})
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready(unhealthy) = %d, want 503", rec.Code)
	}
}

type unhealthyChecker struct{}

func (unhealthyChecker) Healthy() bool { return false }
