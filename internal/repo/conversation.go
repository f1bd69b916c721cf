package repo

import (
	"context"
	"sync"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
)

// ConversationRepo stores per-conversation ordered message logs.
// Conversations are keyed by the counterpart's display name and are
// append-only: there is no edit or delete.
type ConversationRepo interface {
	// Append adds a message to the end of the named conversation, creating
	// the conversation if it does not exist yet.
	Append(ctx context.Context, conversationID string, msg domain.Message) error

	// Messages returns the full ordered log for the named conversation.
	// A conversation that does not exist yields an empty slice, not an error.
	Messages(ctx context.Context, conversationID string) ([]domain.Message, error)

	// Exists reports whether the named conversation has been created,
	// even if it holds no messages yet.
	Exists(ctx context.Context, conversationID string) (bool, error)

	// CreateIfMissing ensures the named conversation exists, creating an
	// empty log if needed. Used when following a user.
	CreateIfMissing(ctx context.Context, conversationID string) error
}

// memConversationRepo is the in-memory implementation of ConversationRepo.
type memConversationRepo struct {
	mu            sync.RWMutex
	conversations map[string][]domain.Message
}

// NewConversationRepo constructs an empty in-memory ConversationRepo.
func NewConversationRepo() ConversationRepo {
	return &memConversationRepo{conversations: make(map[string][]domain.Message)}
}

func (r *memConversationRepo) Append(_ context.Context, conversationID string, msg domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversations[conversationID] = append(r.conversations[conversationID], msg)
	return nil
}

func (r *memConversationRepo) Messages(_ context.Context, conversationID string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.conversations[conversationID]
	out := make([]domain.Message, len(log))
	copy(out, log)
	return out, nil
}

func (r *memConversationRepo) Exists(_ context.Context, conversationID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conversations[conversationID]
	return ok, nil
}

func (r *memConversationRepo) CreateIfMissing(_ context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conversations[conversationID]; !ok {
		r.conversations[conversationID] = []domain.Message{}
	}
	return nil
}
