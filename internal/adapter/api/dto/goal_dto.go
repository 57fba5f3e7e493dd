package dto

import (
	"strings"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
)

// MilestoneRequest representa os dados de um novo marco
type MilestoneRequest struct {
	Title      string    `json:"title" binding:"required"`
	TargetDate time.Time `json:"targetDate" binding:"required"`
}

// UpdateMilestoneRequest representa uma atualização parcial de um marco
type UpdateMilestoneRequest struct {
	Title      *string    `json:"title"`
	TargetDate *time.Time `json:"targetDate"`
	Completed  *bool      `json:"completed"`
}

// Apply aplica os campos informados ao marco
func (r UpdateMilestoneRequest) Apply(m *goal.Milestone) error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return goal.ErrEmptyTitle
		}
		m.Title = title
	}
	if r.TargetDate != nil {
		m.TargetDate = *r.TargetDate
	}
	if r.Completed != nil {
		m.Completed = *r.Completed
	}
	return nil
}

// CreateLongTermGoalRequest representa os dados de uma nova meta de longo prazo
type CreateLongTermGoalRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	TargetDate  time.Time          `json:"targetDate" binding:"required"`
	Milestones  []MilestoneRequest `json:"milestones" binding:"dive"`
}

// UpdateLongTermGoalRequest representa uma atualização parcial de uma meta de longo prazo
type UpdateLongTermGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	TargetDate  *time.Time `json:"targetDate"`
	Progress    *int       `json:"progress"`
	Completed   *bool      `json:"completed"`
}

// Apply aplica os campos informados à meta
func (r UpdateLongTermGoalRequest) Apply(g *goal.LongTermGoal) error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return goal.ErrEmptyTitle
		}
		g.Title = title
	}
	if r.Description != nil {
		g.Description = strings.TrimSpace(*r.Description)
	}
	if r.TargetDate != nil {
		g.TargetDate = *r.TargetDate
	}
	if r.Progress != nil {
		if err := g.SetProgress(*r.Progress); err != nil {
			return err
		}
	}
	if r.Completed != nil {
		g.Completed = *r.Completed
	}
	return nil
}

// CreateShortTermGoalRequest representa os dados de uma nova meta de curto prazo
type CreateShortTermGoalRequest struct {
	ParentGoalID string    `json:"parentGoalId"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Timeframe    string    `json:"timeframe" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required"`
}

// UpdateShortTermGoalRequest representa uma atualização parcial de uma meta de curto prazo
type UpdateShortTermGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Timeframe   *string    `json:"timeframe"`
	EndDate     *time.Time `json:"endDate"`
	Progress    *int       `json:"progress"`
	Completed   *bool      `json:"completed"`
}

// Apply aplica os campos informados à meta
func (r UpdateShortTermGoalRequest) Apply(g *goal.ShortTermGoal) error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return goal.ErrEmptyTitle
		}
		g.Title = title
	}
	if r.Description != nil {
		g.Description = strings.TrimSpace(*r.Description)
	}
	if r.Timeframe != nil {
		tf := goal.Timeframe(*r.Timeframe)
		if !tf.IsValid() {
			return goal.ErrInvalidTimeframe
		}
		g.Timeframe = tf
	}
	if r.EndDate != nil {
		g.EndDate = *r.EndDate
	}
	if r.Progress != nil {
		if err := g.SetProgress(*r.Progress); err != nil {
			return err
		}
	}
	if r.Completed != nil {
		g.Completed = *r.Completed
	}
	return nil
}

// GoalsResponse representa a listagem de metas do usuário
type GoalsResponse struct {
	LongTermGoals  []*goal.LongTermGoal  `json:"longTermGoals"`
	ShortTermGoals []*goal.ShortTermGoal `json:"shortTermGoals"`
}
