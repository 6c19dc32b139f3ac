package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// ListConversations retrieves all conversations the authenticated user is a
// member of.
func (c *Client) ListConversations(ctx context.Context, token string) ([]ConversationResponseDto, error) {
	var conversations []ConversationResponseDto
	if err := c.doJSON(ctx, http.MethodGet, "/api/chat/conversations", token, nil, &conversations); err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return conversations, nil
}

// ListMessages retrieves the messages of a conversation in creation order.
func (c *Client) ListMessages(ctx context.Context, token, conversationID string) ([]MessageResponseDto, error) {
	var messages []MessageResponseDto
	path := fmt.Sprintf("/api/chat/conversations/%s/messages", url.PathEscape(conversationID))
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &messages); err != nil {
		return nil, fmt.Errorf("listing messages for %s: %w", conversationID, err)
	}
	return messages, nil
}

// SendMessage posts a message to a conversation. A fresh client reference is
// attached so the backend can deduplicate a retried send.
func (c *Client) SendMessage(ctx context.Context, token, conversationID, body string, attachmentIDs []string) (MessageResponseDto, error) {
	req := SendMessageRequestDto{
		Body:          body,
		ClientRef:     uuid.NewString(),
		AttachmentIDs: attachmentIDs,
	}

	var message MessageResponseDto
	path := fmt.Sprintf("/api/chat/conversations/%s/messages", url.PathEscape(conversationID))
	if err := c.doJSON(ctx, http.MethodPost, path, token, req, &message); err != nil {
		return MessageResponseDto{}, fmt.Errorf("sending message to %s: %w", conversationID, err)
	}
	return message, nil
}

// DeleteMessage removes a message the authenticated user sent.
func (c *Client) DeleteMessage(ctx context.Context, token, conversationID, messageID string) error {
	path := fmt.Sprintf("/api/chat/conversations/%s/messages/%s",
		url.PathEscape(conversationID), url.PathEscape(messageID))
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("deleting message %s: %w", messageID, err)
	}
	return nil
}
