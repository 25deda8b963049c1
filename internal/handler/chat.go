// Package handler exposes the chat and streaming HTTP endpoints.
package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/akaki911/aispace-sub003/internal/model"
	"github.com/akaki911/aispace-sub003/internal/orchestrator"
	"github.com/akaki911/aispace-sub003/pkg/logger"
)

// ChatHandler serves the non-streaming chat endpoint.
type ChatHandler struct {
	orch        *orchestrator.Orchestrator
	defaultLang string
	log         *logger.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(orch *orchestrator.Orchestrator, defaultLang string, log *logger.Logger) *ChatHandler {
	return &ChatHandler{orch: orch, defaultLang: defaultLang, log: log}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, false)
}

// ChatAdmin handles POST /api/v1/chat: the authenticated operator
// surface, always the admin audience.
func (h *ChatHandler) ChatAdmin(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, true)
}

func (h *ChatHandler) serve(w http.ResponseWriter, r *http.Request, forceAdmin bool) {
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

	if forceAdmin {
		req.Audience = model.AudienceAdmin
	}
	n := orchestrator.Normalize(&req, h.defaultLang)

	reply, err := h.orch.Handle(r.Context(), n)
	if err != nil {
		h.log.Error("chat request failed",
			zap.String("user_id", n.UserID), zap.Error(err))
		h.writeInternalError(w, n, err)
		return
	}

	if reply.Audience == model.AudiencePublic {
		writeJSON(w, http.StatusOK, model.PublicChatResponse{
			Success:    true,
			Response:   reply.Plain,
			QuickPicks: reply.QuickPicks,
			Timestamp:  timestamp(),
		})
		return
	}

	writeJSON(w, http.StatusOK, model.AdminChatResponse{
		Success:                   true,
		Response:                  reply.Blocks,
		Metadata:                  reply.Metadata,
		ConversationHistoryLength: len(n.History),
		Timestamp:                 timestamp(),
	})
}

// writeInternalError renders the 500 envelope: a localized apology for
// everyone, machine-readable details only for the admin audience.
func (h *ChatHandler) writeInternalError(w http.ResponseWriter, n orchestrator.Normalized, err error) {
	resp := model.InternalErrorResponse{
		Success:   false,
		Error:     "internal error",
		Response:  h.orch.Apology(n.Language),
		Timestamp: timestamp(),
	}
	if n.Audience == model.AudienceAdmin {
		resp.Details = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
