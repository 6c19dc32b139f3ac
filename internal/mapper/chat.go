package mapper

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
)

// Message converts a message DTO. The embedded sender is mapped with the
// same user mapping used everywhere else.
func Message(dto backend.MessageResponseDto) (domain.Message, error) {
	id, err := require("message.id", dto.ID)
	if err != nil {
		return domain.Message{}, err
	}
	createdAt, err := parseTime("message.created_at", dto.CreatedAt)
	if err != nil {
		return domain.Message{}, err
	}
	sender, err := User(dto.Sender)
	if err != nil {
		return domain.Message{}, fmt.Errorf("message %s sender: %w", id, err)
	}

	return domain.Message{
		ID:             id,
		ConversationID: dto.ConversationID,
		Sender:         sender,
		Body:           dto.Body,
		Attachments: lo.Map(dto.Attachments, func(a backend.AttachmentDto, _ int) domain.Attachment {
			return domain.Attachment{ID: a.ID, URL: a.URL, MimeType: a.MimeType}
		}),
		CreatedAt: createdAt,
	}, nil
}

// Messages maps a slice of message DTOs, failing on the first malformed record.
func Messages(dtos []backend.MessageResponseDto) ([]domain.Message, error) {
	messages := make([]domain.Message, 0, len(dtos))
	for i, dto := range dtos {
		m, err := Message(dto)
		if err != nil {
			return nil, fmt.Errorf("message[%d]: %w", i, err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// Conversation converts a conversation DTO including its members and, when
// present, the most recent message.
func Conversation(dto backend.ConversationResponseDto) (domain.Conversation, error) {
	id, err := require("conversation.id", dto.ID)
	if err != nil {
		return domain.Conversation{}, err
	}
	createdAt, err := parseTime("conversation.created_at", dto.CreatedAt)
	if err != nil {
		return domain.Conversation{}, err
	}
	updatedAt, err := parseTime("conversation.updated_at", dto.UpdatedAt)
	if err != nil {
		return domain.Conversation{}, err
	}

	members, err := Users(dto.Members)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("conversation %s: %w", id, err)
	}

	var lastMessage *domain.Message
	if dto.LastMessage != nil {
		m, err := Message(*dto.LastMessage)
		if err != nil {
			return domain.Conversation{}, fmt.Errorf("conversation %s: %w", id, err)
		}
		lastMessage = &m
	}

	return domain.Conversation{
		ID:          id,
		Type:        domain.ConversationType(dto.Type),
		Name:        lo.FromPtr(dto.Name),
		Members:     members,
		LastMessage: lastMessage,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// Conversations maps a slice of conversation DTOs, failing on the first
// malformed record. Ordering is left to the caller.
func Conversations(dtos []backend.ConversationResponseDto) ([]domain.Conversation, error) {
	conversations := make([]domain.Conversation, 0, len(dtos))
	for i, dto := range dtos {
		c, err := Conversation(dto)
		if err != nil {
			return nil, fmt.Errorf("conversation[%d]: %w", i, err)
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}
