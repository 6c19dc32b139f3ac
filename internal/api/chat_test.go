package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
)

func conversationDto(id, lastMessageAt string) backend.ConversationResponseDto {
	var last *backend.MessageResponseDto
	if lastMessageAt != "" {
		last = &backend.MessageResponseDto{
			ID:             id + "-m",
			ConversationID: id,
			Sender:         backend.UserDto{ID: "u1"},
			Body:           "hola",
			CreatedAt:      lastMessageAt,
		}
	}
	return backend.ConversationResponseDto{
		ID:          id,
		Type:        "DIRECT",
		Members:     []backend.UserDto{{ID: "u1"}, {ID: "u2"}},
		LastMessage: last,
		CreatedAt:   "2025-01-01T00:00:00Z",
		UpdatedAt:   "2025-01-01T00:00:00Z",
	}
}

func TestListConversationsSortedByLastActivity(t *testing.T) {
	platform := &fakePlatform{convos: []backend.ConversationResponseDto{
		conversationDto("c1", "2025-06-01T10:00:00Z"),
		conversationDto("c3", "2025-06-03T10:00:00Z"),
		conversationDto("c2", "2025-06-02T10:00:00Z"),
	}}
	h := newTestHandler(platform)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations", nil)
	w := httptest.NewRecorder()
	h.ListConversations(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	want := []string{"c3", "c2", "c1"}
	for i, id := range want {
		if resp[i].ID != id {
			t.Errorf("resp[%d].ID = %q, want %q", i, resp[i].ID, id)
		}
	}
}

func TestPostMessageSanitizesBody(t *testing.T) {
	platform := &fakePlatform{}
	h := newTestHandler(platform)

	body := `{"body":" <script>alert(1)</script>hola "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/c1/messages", strings.NewReader(body))
	req.SetPathValue("id", "c1")
	w := httptest.NewRecorder()
	h.PostMessage(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body)
	}
	if platform.sentConvo != "c1" {
		t.Errorf("conversation = %q, want c1", platform.sentConvo)
	}
	if platform.sent == nil || platform.sent.Body != "scriptalert(1)/scripthola" {
		t.Errorf("sent body = %+v, want sanitized text", platform.sent)
	}
}

func TestPostMessageRejectsEmptyAfterSanitize(t *testing.T) {
	platform := &fakePlatform{}
	h := newTestHandler(platform)

	body := `{"body":" <> "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/c1/messages", strings.NewReader(body))
	req.SetPathValue("id", "c1")
	w := httptest.NewRecorder()
	h.PostMessage(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if platform.sent != nil {
		t.Error("message forwarded despite empty body")
	}
}

func TestDeleteMessage(t *testing.T) {
	platform := &fakePlatform{}
	h := newTestHandler(platform)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/conversations/c1/messages/m9", nil)
	req.SetPathValue("id", "c1")
	req.SetPathValue("messageId", "m9")
	w := httptest.NewRecorder()
	h.DeleteMessage(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if platform.deleted != "m9" {
		t.Errorf("deleted = %q, want m9", platform.deleted)
	}
}
