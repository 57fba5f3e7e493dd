package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hugohenrick/voice-productivity/internal/domain/chat"
)

// ChatRepository implementa chat.Repository em memória
type ChatRepository struct {
	mu       sync.RWMutex
	messages []chat.Message
}

// NewChatRepository cria um histórico vazio
func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

func (r *ChatRepository) SaveMessage(_ context.Context, message *chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, *message)
	return nil
}

func (r *ChatRepository) GetUserHistory(_ context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := []chat.Message{}
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].UserID == userID {
			history = append(history, r.messages[i])
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})

	if offset >= len(history) {
		return []chat.Message{}, nil
	}
	history = history[offset:]
	if limit > 0 && limit < len(history) {
		history = history[:limit]
	}
	return history, nil
}

func (r *ChatRepository) DeleteUserHistory(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

func (r *ChatRepository) CountUserMessages(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, m := range r.messages {
		if m.UserID == userID {
			count++
		}
	}
	return count, nil
}
