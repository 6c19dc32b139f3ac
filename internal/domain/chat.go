package domain

import (
	"sort"
	"time"
)

// ConversationType distinguishes one-to-one chats from group chats.
type ConversationType string

const (
	ConversationTypeDirect ConversationType = "DIRECT"
	ConversationTypeGroup  ConversationType = "GROUP"
)

// Attachment is a file attached to a message.
type Attachment struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
}

// Message is a single chat message, ordered by creation time within its
// conversation.
type Message struct {
	ID             string       `json:"id"`
	ConversationID string       `json:"conversationId"`
	Sender         User         `json:"sender"`
	Body           string       `json:"body"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// Conversation is a chat thread with its members and the most recent message,
// as returned by the conversation list endpoint.
type Conversation struct {
	ID          string           `json:"id"`
	Type        ConversationType `json:"type"`
	Name        string           `json:"name,omitempty"`
	Members     []User           `json:"members"`
	LastMessage *Message         `json:"lastMessage,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// LastActivity returns the time of the most recent message, falling back to
// the conversation's creation time when no message has been sent yet.
func (c Conversation) LastActivity() time.Time {
	if c.LastMessage != nil {
		return c.LastMessage.CreatedAt
	}
	return c.CreatedAt
}

// SortConversations returns a new slice ordered by last activity, most recent
// first. The input is not modified; the ordering is recomputed on every call
// rather than cached.
func SortConversations(conversations []Conversation) []Conversation {
	sorted := make([]Conversation, len(conversations))
	copy(sorted, conversations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastActivity().After(sorted[j].LastActivity())
	})
	return sorted
}
