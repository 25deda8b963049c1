package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/akaki911/aispace-sub003/internal/model"
	"github.com/akaki911/aispace-sub003/internal/orchestrator"
	"github.com/akaki911/aispace-sub003/internal/provider"
	"github.com/akaki911/aispace-sub003/internal/stream"
	"github.com/akaki911/aispace-sub003/pkg/logger"
)

// StreamHandler serves the SSE chat endpoint.
type StreamHandler struct {
	orch         *orchestrator.Orchestrator
	client       provider.Client
	cfg          stream.Config
	defaultModel string
	defaultLang  string
	log          *logger.Logger
}

// NewStreamHandler creates a stream handler. client may be nil, which
// pins every session to offline replay.
func NewStreamHandler(orch *orchestrator.Orchestrator, client provider.Client, cfg stream.Config, defaultModel, defaultLang string, log *logger.Logger) *StreamHandler {
	return &StreamHandler{
		orch:         orch,
		client:       client,
		cfg:          cfg,
		defaultModel: defaultModel,
		defaultLang:  defaultLang,
		log:          log,
	}
}

// Stream handles POST /api/chat/stream.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
			Success: false,
			Error:   "invalid request body",
			Issues: []model.FieldIssue{
				{Field: "body", Message: "request body must be valid JSON"},
			},
			Timestamp: timestamp(),
		})
		return
	}
	if issues := orchestrator.Validate(&req); len(issues) > 0 {
		writeJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
			Success:   false,
			Error:     "validation failed",
			Issues:    issues,
			Timestamp: timestamp(),
		})
		return
	}

	// Stream chunks are plain text, so the fallback reply is rendered
	// for the public audience regardless of the request's audience.
	req.Audience = model.AudiencePublic
	n := orchestrator.Normalize(&req, h.defaultLang)

	reply, err := h.orch.Handle(r.Context(), n)
	if err != nil {
		h.log.Error("stream fallback render failed",
			zap.String("user_id", n.UserID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, model.InternalErrorResponse{
			Success:   false,
			Error:     "internal error",
			Response:  h.orch.Apology(n.Language),
			Timestamp: timestamp(),
		})
		return
	}
	fallback := stream.Resolve(reply.Paragraphs)

	mode := model.ModeOffline
	if h.client != nil {
		mode = model.ModeLive
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.Header().Set("X-Response-Format", ResponseFormatHeader)
	w.Header().Set("X-Delivery-Mode", string(mode))

	session, err := stream.NewSession(w, h.cfg, h.log)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, model.InternalErrorResponse{
			Success:   false,
			Error:     "streaming not supported",
			Response:  h.orch.Apology(n.Language),
			Timestamp: timestamp(),
		})
		return
	}

	if mode == model.ModeOffline {
		session.RunOffline(r.Context(), fallback, n.Message)
		return
	}

	session.RunLive(r.Context(), h.client, h.buildProviderRequest(n), fallback, n.Message)
}

func (h *StreamHandler) buildProviderRequest(n orchestrator.Normalized) *provider.Request {
	messages := make([]provider.Message, 0, len(n.History)+1)
	for _, entry := range n.History {
		messages = append(messages, provider.Message{
			Role:    string(entry.Role),
			Content: entry.Content,
		})
	}
	messages = append(messages, provider.Message{
		Role:    string(model.RoleUser),
		Content: n.Message,
	})

	// selectedModel wins; the configured default covers its absence.
	modelName := n.Model
	if modelName == "" {
		modelName = h.defaultModel
	}

	return &provider.Request{
		Model:    modelName,
		Messages: messages,
	}
}
