package goal

import (
	"context"
	"errors"
)

// Erros específicos do repositório
var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
)

// Repository define a interface para operações de repositório de metas.
// Todas as buscas são restritas ao usuário dono da meta.
type Repository interface {
	// CreateLongTerm cria uma nova meta de longo prazo
	CreateLongTerm(ctx context.Context, g *LongTermGoal) error

	// FindLongTermByID busca uma meta de longo prazo com seus marcos
	FindLongTermByID(ctx context.Context, userID, id string) (*LongTermGoal, error)

	// ListLongTerm lista as metas de longo prazo do usuário
	ListLongTerm(ctx context.Context, userID string) ([]*LongTermGoal, error)

	// UpdateLongTerm atualiza os dados de uma meta de longo prazo (sem os marcos)
	UpdateLongTerm(ctx context.Context, g *LongTermGoal) error

	// DeleteLongTerm remove a meta e as metas de curto prazo ligadas a ela
	DeleteLongTerm(ctx context.Context, userID, id string) error

	// AddMilestone adiciona um marco à meta
	AddMilestone(ctx context.Context, goalID string, m *Milestone) error

	// UpdateMilestone atualiza um marco existente
	UpdateMilestone(ctx context.Context, goalID string, m *Milestone) error

	// DeleteMilestone remove um marco
	DeleteMilestone(ctx context.Context, goalID, milestoneID string) error

	// CreateShortTerm cria uma ou mais metas de curto prazo
	CreateShortTerm(ctx context.Context, goals ...*ShortTermGoal) error

	// FindShortTermByID busca uma meta de curto prazo
	FindShortTermByID(ctx context.Context, userID, id string) (*ShortTermGoal, error)

	// ListShortTerm lista as metas de curto prazo do usuário
	ListShortTerm(ctx context.Context, userID string) ([]*ShortTermGoal, error)

	// UpdateShortTerm atualiza uma meta de curto prazo
	UpdateShortTerm(ctx context.Context, g *ShortTermGoal) error

	// DeleteShortTerm remove uma meta de curto prazo
	DeleteShortTerm(ctx context.Context, userID, id string) error
}
