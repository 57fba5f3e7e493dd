package dto

import (
	"strings"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/task"
)

// CreateTaskRequest representa os dados de uma nova tarefa
type CreateTaskRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	EstimatedTime *int       `json:"estimatedTime"`
	DueDate       *time.Time `json:"dueDate"`
	Priority      string     `json:"priority"`
	RelatedGoalID string     `json:"relatedGoalId"`
	Daily         bool       `json:"daily"`
}

// ToTask cria a tarefa de domínio validada
func (r CreateTaskRequest) ToTask(userID string) (*task.Task, error) {
	t, err := task.NewTask(userID, r.Title)
	if err != nil {
		return nil, err
	}
	if err := t.SetPriority(task.Priority(r.Priority)); err != nil {
		return nil, err
	}
	if err := t.SetEstimatedTime(r.EstimatedTime); err != nil {
		return nil, err
	}
	t.Description = strings.TrimSpace(r.Description)
	t.DueDate = r.DueDate
	t.RelatedGoalID = r.RelatedGoalID
	t.Daily = r.Daily
	return t, nil
}

// UpdateTaskRequest representa uma atualização parcial de uma tarefa
type UpdateTaskRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Completed     *bool      `json:"completed"`
	EstimatedTime *int       `json:"estimatedTime"`
	DueDate       *time.Time `json:"dueDate"`
	Priority      *string    `json:"priority"`
	RelatedGoalID *string    `json:"relatedGoalId"`
	Daily         *bool      `json:"daily"`
}

// Apply aplica os campos informados à tarefa
func (r UpdateTaskRequest) Apply(t *task.Task) error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return task.ErrEmptyTitle
		}
		t.Title = title
	}
	if r.Description != nil {
		t.Description = strings.TrimSpace(*r.Description)
	}
	if r.Completed != nil {
		t.Completed = *r.Completed
	}
	if r.EstimatedTime != nil {
		if err := t.SetEstimatedTime(r.EstimatedTime); err != nil {
			return err
		}
	}
	if r.DueDate != nil {
		t.DueDate = r.DueDate
	}
	if r.Priority != nil {
		if err := t.SetPriority(task.Priority(*r.Priority)); err != nil {
			return err
		}
	}
	if r.RelatedGoalID != nil {
		t.RelatedGoalID = *r.RelatedGoalID
	}
	if r.Daily != nil {
		t.Daily = *r.Daily
	}
	return nil
}

// BatchTaskUpdate é uma atualização parcial identificada pelo ID da tarefa
type BatchTaskUpdate struct {
	ID string `json:"id" binding:"required"`
	UpdateTaskRequest
}

// BatchUpdateTasksRequest representa a atualização de várias tarefas de uma vez
type BatchUpdateTasksRequest struct {
	Tasks []BatchTaskUpdate `json:"tasks" binding:"required,dive"`
}

// TasksResponse representa uma lista de tarefas
type TasksResponse struct {
	Tasks []*task.Task `json:"tasks"`
}
