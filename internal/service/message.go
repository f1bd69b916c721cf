// Package service contains the business logic for the CarPal core.
// Services validate inputs, enforce lifecycle rules, and orchestrate repo
// calls. No storage lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/ids"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
)

// NoMessagesPreview is the exact preview text for a conversation that holds
// no messages yet.
const NoMessagesPreview = "No messages yet"

// previewLimit is the maximum number of runes shown in a conversation
// preview before the body is cut and suffixed with an ellipsis.
const previewLimit = 50

// MessageService implements the conversation-threaded message store.
type MessageService struct {
	conversations repo.ConversationRepo
	ids           *ids.Generator
	contacts      []string
	log           *zap.Logger
}

// NewMessageService constructs a MessageService.
//
// contacts is the ordered allowlist of counterpart names the preview list
// reports on. Conversations created under names outside this list still
// store and return messages but are invisible to Previews — a quirk carried
// over from the original conversation list.
func NewMessageService(conversations repo.ConversationRepo, gen *ids.Generator, contacts []string, log *zap.Logger) *MessageService {
	return &MessageService{
		conversations: conversations,
		ids:           gen,
		contacts:      contacts,
		log:           log,
	}
}

// Send appends a message with the given payload to the named conversation,
// creating the conversation on first use. A nil payload means plain text.
func (s *MessageService) Send(ctx context.Context, conversationID, sender, content string, payload domain.Payload) (domain.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return domain.Message{}, fmt.Errorf("service.MessageService.Send: conversation is required: %w", domain.ErrValidation)
	}
	if payload == nil {
		payload = domain.TextPayload{}
	}

	msg := domain.Message{
		ID:      s.ids.NextID(),
		Sender:  sender,
		Content: content,
		SentAt:  time.Now(),
		Payload: payload,
	}
	if err := s.conversations.Append(ctx, conversationID, msg); err != nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Send: %w", err)
	}

	s.log.Debug("message sent",
		zap.String("conversation", conversationID),
		zap.String("sender", sender),
		zap.String("kind", string(payload.Kind())),
	)
	return msg, nil
}

// SendText appends a plain text message to the named conversation.
func (s *MessageService) SendText(ctx context.Context, conversationID, sender, content string) (domain.Message, error) {
	return s.Send(ctx, conversationID, sender, content, domain.TextPayload{})
}

// Messages returns the full ordered log for the named conversation.
// There is no pagination; logs are process-lifetime and small.
func (s *MessageService) Messages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	msgs, err := s.conversations.Messages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("service.MessageService.Messages: %w", err)
	}
	return msgs, nil
}

// LastMessage returns the preview line for the named conversation: the last
// message body, truncated to 50 runes plus an ellipsis when longer, or
// exactly "No messages yet" when the conversation is empty or absent.
func (s *MessageService) LastMessage(ctx context.Context, conversationID string) (string, error) {
	msgs, err := s.conversations.Messages(ctx, conversationID)
	if err != nil {
		return "", fmt.Errorf("service.MessageService.LastMessage: %w", err)
	}
	if len(msgs) == 0 {
		return NoMessagesPreview, nil
	}
	return truncatePreview(msgs[len(msgs)-1].Content), nil
}

// Previews reports the conversation list: one entry per contact in the
// configured allowlist that has an existing (possibly empty) conversation,
// in allowlist order.
func (s *MessageService) Previews(ctx context.Context) ([]domain.ConversationPreview, error) {
	var out []domain.ConversationPreview
	for _, name := range s.contacts {
		exists, err := s.conversations.Exists(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("service.MessageService.Previews: %w", err)
		}
		if !exists {
			continue
		}

		msgs, err := s.conversations.Messages(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("service.MessageService.Previews: %w", err)
		}

		preview := domain.ConversationPreview{
			Name:        name,
			LastMessage: NoMessagesPreview,
		}
		if len(msgs) > 0 {
			last := msgs[len(msgs)-1]
			preview.LastMessage = truncatePreview(last.Content)
			preview.LastAt = last.SentAt
		}
		out = append(out, preview)
	}
	return out, nil
}

// ShareTripLink sends a deep link to the given trip into the named
// conversation. The link body doubles as the message content so clients
// without link rendering still show something useful.
func (s *MessageService) ShareTripLink(ctx context.Context, conversationID, sender, scheme string, tripID uuid.UUID) (domain.Message, error) {
	link := domain.TripLink(scheme, tripID)
	return s.Send(ctx, conversationID, sender, link, domain.LinkPayload{URL: link})
}

// CreateConversationIfNeeded ensures an (empty) conversation exists with the
// named counterpart. Used when the user starts following someone.
func (s *MessageService) CreateConversationIfNeeded(ctx context.Context, conversationID string) error {
	if strings.TrimSpace(conversationID) == "" {
		return fmt.Errorf("service.MessageService.CreateConversationIfNeeded: conversation is required: %w", domain.ErrValidation)
	}
	if err := s.conversations.CreateIfMissing(ctx, conversationID); err != nil {
		return fmt.Errorf("service.MessageService.CreateConversationIfNeeded: %w", err)
	}
	return nil
}

// truncatePreview cuts a message body to previewLimit runes plus "..." when
// it is longer. Counting runes, not bytes, keeps multi-byte content intact.
func truncatePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
