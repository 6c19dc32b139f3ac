package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/mapper"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/sanitize"
)

// ListConversations handles GET /api/v1/conversations. Conversations are
// re-sorted by last activity on every request.
func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	dtos, err := h.platform.ListConversations(r.Context(), s.token)
	if err != nil {
		slog.Error("failed to list conversations", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return
	}

	conversations, err := mapper.Conversations(dtos)
	if err != nil {
		slog.Error("malformed conversation record", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, domain.SortConversations(conversations))
}

// ListMessages handles GET /api/v1/conversations/{id}/messages.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	conversationID := r.PathValue("id")

	dtos, err := h.platform.ListMessages(r.Context(), s.token, conversationID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			writeError(w, http.StatusNotFound, "conversation not found")
			return
		}
		slog.Error("failed to list messages", "conversation", conversationID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return
	}

	messages, err := mapper.Messages(dtos)
	if err != nil {
		slog.Error("malformed message record", "conversation", conversationID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

type postMessageRequest struct {
	Body          string   `json:"body"`
	AttachmentIDs []string `json:"attachmentIds"`
}

// PostMessage handles POST /api/v1/conversations/{id}/messages. The body is
// sanitized before submission; a message that sanitizes to nothing is rejected.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	conversationID := r.PathValue("id")

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	body := sanitize.String(req.Body)
	if body == "" {
		writeError(w, http.StatusBadRequest, "message body is empty")
		return
	}

	dto, err := h.platform.SendMessage(r.Context(), s.token, conversationID, body, req.AttachmentIDs)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			writeError(w, http.StatusNotFound, "conversation not found")
			return
		}
		slog.Error("failed to send message", "conversation", conversationID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return
	}

	message, err := mapper.Message(dto)
	if err != nil {
		slog.Error("malformed message record", "conversation", conversationID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

// DeleteMessage handles DELETE /api/v1/conversations/{id}/messages/{messageId}.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	conversationID := r.PathValue("id")
	messageID := r.PathValue("messageId")

	if err := h.platform.DeleteMessage(r.Context(), s.token, conversationID, messageID); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			writeError(w, http.StatusNotFound, "message not found")
			return
		}
		slog.Error("failed to delete message", "message", messageID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
