package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/voice-productivity/internal/domain/chat"
	"github.com/jackc/pgx/v5/pgtype"
)

// ChatRepository implementa chat.Repository usando PostgreSQL
type ChatRepository struct {
	db DB
}

// NewChatRepository cria uma nova instância de ChatRepository
func NewChatRepository(db DB) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

func (r *ChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	// Se o ID da mensagem estiver vazio, gerar um novo
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	var intent interface{}
	if message.Intent != "" {
		intent = message.Intent
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_messages (id, user_id, role, content, intent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		message.ID,
		message.UserID,
		message.Role,
		message.Content,
		intent,
		message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

func (r *ChatRepository) GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, role, content, intent, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	messages := []chat.Message{}
	for rows.Next() {
		var msg chat.Message
		var intent pgtype.Text
		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Content, &intent, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		if intent.Valid {
			msg.Intent = intent.String
		}
		msg.UserID = userID
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return messages, nil
}

func (r *ChatRepository) DeleteUserHistory(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM chat_messages WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}
	return nil
}

func (r *ChatRepository) CountUserMessages(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_messages WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}
	return count, nil
}
