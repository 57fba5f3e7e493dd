package task

import (
	"context"
	"errors"
)

// ErrTaskNotFound é retornado quando a tarefa não existe para o usuário
var ErrTaskNotFound = errors.New("task not found")

// Repository define a interface para operações de repositório de tarefas
type Repository interface {
	// Create cria uma ou mais tarefas
	Create(ctx context.Context, tasks ...*Task) error

	// FindByID busca uma tarefa do usuário
	FindByID(ctx context.Context, userID, id string) (*Task, error)

	// List lista as tarefas do usuário
	List(ctx context.Context, userID string) ([]*Task, error)

	// Update atualiza uma tarefa existente
	Update(ctx context.Context, t *Task) error

	// Delete remove uma tarefa
	Delete(ctx context.Context, userID, id string) error
}
