package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/task"
)

// TaskRepository implementa task.Repository em memória
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]task.Task
}

// NewTaskRepository cria um repositório de tarefas vazio
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]task.Task)}
}

func (r *TaskRepository) Create(_ context.Context, tasks ...*task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tasks {
		r.tasks[t.ID] = *t
	}
	return nil
}

func (r *TaskRepository) FindByID(_ context.Context, userID, id string) (*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, task.ErrTaskNotFound
	}
	return &t, nil
}

func (r *TaskRepository) List(_ context.Context, userID string) ([]*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []*task.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			c := t
			tasks = append(tasks, &c)
		}
	}

	// mesma ordem do PostgreSQL: prazo ascendente, sem prazo por último
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return a.CreatedAt.Before(b.CreatedAt)
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case a.DueDate.Equal(*b.DueDate):
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
	return tasks, nil
}

func (r *TaskRepository) Update(_ context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.tasks[t.ID]
	if !ok || current.UserID != t.UserID {
		return task.ErrTaskNotFound
	}
	t.UpdatedAt = time.Now()
	r.tasks[t.ID] = *t
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return task.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
