package dto

import (
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/internal/service/planner"
)

// GenerateShortTermGoalsRequest representa o pedido de desdobramento de uma meta
type GenerateShortTermGoalsRequest struct {
	LongTermGoalID string `json:"longTermGoalId" binding:"required"`
}

// GenerateTasksRequest representa o pedido de tarefas para uma meta
type GenerateTasksRequest struct {
	GoalID   string `json:"goalId" binding:"required"`
	GoalType string `json:"goalType" binding:"required,oneof=long-term short-term"`
}

// SuggestionsResponse representa as sugestões calculadas para o usuário
type SuggestionsResponse struct {
	Suggestions []planner.Suggestion `json:"suggestions"`
}

// GeneratedGoalsResponse representa as metas criadas pelo planejador
type GeneratedGoalsResponse struct {
	Goals []*goal.ShortTermGoal `json:"goals"`
}

// GeneratedTasksResponse representa as tarefas criadas pelo planejador
type GeneratedTasksResponse struct {
	Tasks []*task.Task `json:"tasks"`
}
