package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
)

// Service persiste os planos gerados nos repositórios do usuário
type Service struct {
	goals  goal.Repository
	tasks  task.Repository
	logger logger.Logger
	now    func() time.Time
}

// NewService cria uma nova instância de Service
func NewService(goals goal.Repository, tasks task.Repository, log logger.Logger) *Service {
	return &Service{
		goals:  goals,
		tasks:  tasks,
		logger: log,
		now:    time.Now,
	}
}

// GenerateShortTermGoals cria as metas de curto prazo de uma meta de longo prazo
func (s *Service) GenerateShortTermGoals(ctx context.Context, userID, longTermGoalID string) ([]*goal.ShortTermGoal, error) {
	parent, err := s.goals.FindLongTermByID(ctx, userID, longTermGoalID)
	if err != nil {
		return nil, err
	}

	generated := ShortTermGoalsFor(parent, s.now())
	if err := s.goals.CreateShortTerm(ctx, generated...); err != nil {
		return nil, fmt.Errorf("falha ao salvar metas geradas: %w", err)
	}

	s.logger.Info("Metas de curto prazo geradas", "user_id", userID, "goal_id", parent.ID, "count", len(generated))
	return generated, nil
}

// GenerateTasks cria as tarefas iniciais de uma meta de longo ou curto prazo
func (s *Service) GenerateTasks(ctx context.Context, userID, goalID string, goalType goal.Type) ([]*task.Task, error) {
	var title string
	switch goalType {
	case goal.TypeLongTerm:
		g, err := s.goals.FindLongTermByID(ctx, userID, goalID)
		if err != nil {
			return nil, err
		}
		title = g.Title
	default:
		g, err := s.goals.FindShortTermByID(ctx, userID, goalID)
		if err != nil {
			return nil, err
		}
		title = g.Title
	}

	generated := TasksFor(userID, goalID, title, s.now())
	if err := s.tasks.Create(ctx, generated...); err != nil {
		return nil, fmt.Errorf("falha ao salvar tarefas geradas: %w", err)
	}

	s.logger.Info("Tarefas geradas", "user_id", userID, "goal_id", goalID, "count", len(generated))
	return generated, nil
}

// Suggest carrega metas e tarefas do usuário e calcula as sugestões
func (s *Service) Suggest(ctx context.Context, userID string) ([]Suggestion, error) {
	longTerm, err := s.goals.ListLongTerm(ctx, userID)
	if err != nil {
		return nil, err
	}
	shortTerm, err := s.goals.ListShortTerm(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return Suggestions(longTerm, shortTerm, tasks, s.now()), nil
}
