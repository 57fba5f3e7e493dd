package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de validação de tarefas
var (
	ErrEmptyTitle           = errors.New("title is required")
	ErrInvalidPriority      = errors.New("priority must be one of low, medium, high")
	ErrInvalidEstimatedTime = errors.New("estimated time must be positive")
)

// Priority representa a prioridade da tarefa
type Priority string

// Constantes para Priority
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid verifica se a prioridade é suportada
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task representa uma tarefa do usuário
type Task struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Completed     bool       `json:"completed"`
	EstimatedTime *int       `json:"estimatedTime"` // minutos
	DueDate       *time.Time `json:"dueDate"`
	Priority      Priority   `json:"priority"`
	RelatedGoalID string     `json:"relatedGoalId,omitempty"`
	Daily         bool       `json:"daily"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// NewTask cria uma nova tarefa com prioridade média
func NewTask(userID, title string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	now := time.Now()
	return &Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Priority:  PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetPriority altera a prioridade; texto vazio mantém a atual
func (t *Task) SetPriority(p Priority) error {
	if p == "" {
		return nil
	}
	if !p.IsValid() {
		return ErrInvalidPriority
	}
	t.Priority = p
	return nil
}

// SetEstimatedTime altera o tempo estimado em minutos
func (t *Task) SetEstimatedTime(minutes *int) error {
	if minutes != nil && *minutes <= 0 {
		return ErrInvalidEstimatedTime
	}
	t.EstimatedTime = minutes
	return nil
}

// Complete marca a tarefa como concluída
func (t *Task) Complete() {
	t.Completed = true
	t.UpdatedAt = time.Now()
}

// IsOverdue verifica se a tarefa pendente já passou do prazo
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// IsDueOn verifica se a tarefa é diária ou vence no mesmo dia de ref
func (t *Task) IsDueOn(ref time.Time) bool {
	if t.Daily {
		return true
	}
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
