package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Papéis possíveis de uma mensagem no histórico
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message representa uma mensagem no histórico de comandos de voz
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage cria uma mensagem com ID e horário preenchidos
func NewMessage(userID, role, content, intent string) *Message {
	return &Message{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      role,
		Content:   strings.TrimSpace(content),
		Intent:    intent,
		Timestamp: time.Now(),
	}
}
