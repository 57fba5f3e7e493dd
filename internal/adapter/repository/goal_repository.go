package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// GoalRepository implementa goal.Repository usando PostgreSQL
type GoalRepository struct {
	db DB
}

// NewGoalRepository cria uma nova instância de GoalRepository
func NewGoalRepository(db DB) goal.Repository {
	return &GoalRepository{
		db: db,
	}
}

// CreateLongTerm implementa goal.Repository.CreateLongTerm
func (r *GoalRepository) CreateLongTerm(ctx context.Context, g *goal.LongTermGoal) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO long_term_goals (
				id, user_id, title, description, target_date, progress, completed, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			g.ID, g.UserID, g.Title, g.Description, g.TargetDate,
			g.Progress, g.Completed, g.CreatedAt, g.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir meta de longo prazo: %w", err)
		}

		for i := range g.Milestones {
			if err := insertMilestone(ctx, tx, g.ID, &g.Milestones[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertMilestone(ctx context.Context, tx pgx.Tx, goalID string, m *goal.Milestone) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO milestones (id, goal_id, title, target_date, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, goalID, m.Title, m.TargetDate, m.Completed, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao inserir marco: %w", err)
	}
	return nil
}

// FindLongTermByID implementa goal.Repository.FindLongTermByID
func (r *GoalRepository) FindLongTermByID(ctx context.Context, userID, id string) (*goal.LongTermGoal, error) {
	g := &goal.LongTermGoal{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, title, description, target_date, progress, completed, created_at, updated_at
		FROM long_term_goals
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetDate,
		&g.Progress, &g.Completed, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, goal.ErrGoalNotFound
		}
		return nil, fmt.Errorf("falha ao buscar meta: %w", err)
	}

	byGoal, err := r.milestonesFor(ctx, []string{g.ID})
	if err != nil {
		return nil, err
	}
	g.Milestones = byGoal[g.ID]
	if g.Milestones == nil {
		g.Milestones = []goal.Milestone{}
	}

	return g, nil
}

// ListLongTerm implementa goal.Repository.ListLongTerm
func (r *GoalRepository) ListLongTerm(ctx context.Context, userID string) ([]*goal.LongTermGoal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, description, target_date, progress, completed, created_at, updated_at
		FROM long_term_goals
		WHERE user_id = $1
		ORDER BY target_date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar metas: %w", err)
	}

	goals := []*goal.LongTermGoal{}
	ids := []string{}
	for rows.Next() {
		g := &goal.LongTermGoal{}
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetDate,
			&g.Progress, &g.Completed, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("falha ao ler meta: %w", err)
		}
		goals = append(goals, g)
		ids = append(ids, g.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar metas: %w", err)
	}

	if len(ids) == 0 {
		return goals, nil
	}

	byGoal, err := r.milestonesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		g.Milestones = byGoal[g.ID]
		if g.Milestones == nil {
			g.Milestones = []goal.Milestone{}
		}
	}

	return goals, nil
}

func (r *GoalRepository) milestonesFor(ctx context.Context, goalIDs []string) (map[string][]goal.Milestone, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, goal_id, title, target_date, completed, created_at
		FROM milestones
		WHERE goal_id = ANY($1)
		ORDER BY target_date ASC
	`, goalIDs)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar marcos: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]goal.Milestone)
	for rows.Next() {
		var m goal.Milestone
		var goalID string
		if err := rows.Scan(&m.ID, &goalID, &m.Title, &m.TargetDate, &m.Completed, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler marco: %w", err)
		}
		result[goalID] = append(result[goalID], m)
	}

	return result, rows.Err()
}

// UpdateLongTerm implementa goal.Repository.UpdateLongTerm
func (r *GoalRepository) UpdateLongTerm(ctx context.Context, g *goal.LongTermGoal) error {
	g.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, `
		UPDATE long_term_goals
		SET title = $1, description = $2, target_date = $3, progress = $4, completed = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, g.Title, g.Description, g.TargetDate, g.Progress, g.Completed, g.UpdatedAt, g.ID, g.UserID)
	if err != nil {
		return fmt.Errorf("falha ao atualizar meta: %w", err)
	}
	if result.RowsAffected() == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}

// DeleteLongTerm implementa goal.Repository.DeleteLongTerm.
// Marcos e metas de curto prazo ligadas são removidos na mesma transação.
func (r *GoalRepository) DeleteLongTerm(ctx context.Context, userID, id string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM short_term_goals WHERE parent_goal_id = $1 AND user_id = $2`, id, userID,
		); err != nil {
			return fmt.Errorf("falha ao excluir metas de curto prazo: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM long_term_goals WHERE id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return fmt.Errorf("falha ao excluir meta: %w", err)
		}
		if result.RowsAffected() == 0 {
			return goal.ErrGoalNotFound
		}
		return nil
	})
}

// AddMilestone implementa goal.Repository.AddMilestone
func (r *GoalRepository) AddMilestone(ctx context.Context, goalID string, m *goal.Milestone) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM long_term_goals WHERE id = $1)`, goalID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("falha ao verificar meta: %w", err)
		}
		if !exists {
			return goal.ErrGoalNotFound
		}
		return insertMilestone(ctx, tx, goalID, m)
	})
}

// UpdateMilestone implementa goal.Repository.UpdateMilestone
func (r *GoalRepository) UpdateMilestone(ctx context.Context, goalID string, m *goal.Milestone) error {
	result, err := r.db.Exec(ctx, `
		UPDATE milestones SET title = $1, target_date = $2, completed = $3
		WHERE id = $4 AND goal_id = $5
	`, m.Title, m.TargetDate, m.Completed, m.ID, goalID)
	if err != nil {
		return fmt.Errorf("falha ao atualizar marco: %w", err)
	}
	if result.RowsAffected() == 0 {
		return goal.ErrMilestoneNotFound
	}
	return nil
}

// DeleteMilestone implementa goal.Repository.DeleteMilestone
func (r *GoalRepository) DeleteMilestone(ctx context.Context, goalID, milestoneID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM milestones WHERE id = $1 AND goal_id = $2`, milestoneID, goalID)
	if err != nil {
		return fmt.Errorf("falha ao excluir marco: %w", err)
	}
	if result.RowsAffected() == 0 {
		return goal.ErrMilestoneNotFound
	}
	return nil
}

// CreateShortTerm implementa goal.Repository.CreateShortTerm
func (r *GoalRepository) CreateShortTerm(ctx context.Context, goals ...*goal.ShortTermGoal) error {
	if len(goals) == 0 {
		return nil
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, g := range goals {
			batch.Queue(`
				INSERT INTO short_term_goals (
					id, user_id, parent_goal_id, title, description, timeframe, end_date,
					progress, completed, created_at, updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			`,
				g.ID, g.UserID, nullableText(g.ParentGoalID), g.Title, g.Description,
				string(g.Timeframe), g.EndDate, g.Progress, g.Completed, g.CreatedAt, g.UpdatedAt,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for range goals {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("falha ao inserir meta de curto prazo: %w", err)
			}
		}
		return results.Close()
	})
}

const shortTermColumns = `id, user_id, parent_goal_id, title, description, timeframe, end_date, progress, completed, created_at, updated_at`

func scanShortTerm(row pgx.Row) (*goal.ShortTermGoal, error) {
	g := &goal.ShortTermGoal{}
	var parent pgtype.Text
	var timeframe string
	if err := row.Scan(
		&g.ID, &g.UserID, &parent, &g.Title, &g.Description, &timeframe, &g.EndDate,
		&g.Progress, &g.Completed, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if parent.Valid {
		g.ParentGoalID = parent.String
	}
	g.Timeframe = goal.Timeframe(timeframe)
	return g, nil
}

// FindShortTermByID implementa goal.Repository.FindShortTermByID
func (r *GoalRepository) FindShortTermByID(ctx context.Context, userID, id string) (*goal.ShortTermGoal, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+shortTermColumns+` FROM short_term_goals WHERE id = $1 AND user_id = $2`, id, userID,
	)
	g, err := scanShortTerm(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, goal.ErrGoalNotFound
		}
		return nil, fmt.Errorf("falha ao buscar meta: %w", err)
	}
	return g, nil
}

// ListShortTerm implementa goal.Repository.ListShortTerm
func (r *GoalRepository) ListShortTerm(ctx context.Context, userID string) ([]*goal.ShortTermGoal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shortTermColumns+` FROM short_term_goals WHERE user_id = $1 ORDER BY end_date ASC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar metas: %w", err)
	}
	defer rows.Close()

	goals := []*goal.ShortTermGoal{}
	for rows.Next() {
		g, err := scanShortTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler meta: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// UpdateShortTerm implementa goal.Repository.UpdateShortTerm
func (r *GoalRepository) UpdateShortTerm(ctx context.Context, g *goal.ShortTermGoal) error {
	g.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, `
		UPDATE short_term_goals
		SET parent_goal_id = $1, title = $2, description = $3, timeframe = $4, end_date = $5,
			progress = $6, completed = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`,
		nullableText(g.ParentGoalID), g.Title, g.Description, string(g.Timeframe), g.EndDate,
		g.Progress, g.Completed, g.UpdatedAt, g.ID, g.UserID,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar meta: %w", err)
	}
	if result.RowsAffected() == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}

// DeleteShortTerm implementa goal.Repository.DeleteShortTerm
func (r *GoalRepository) DeleteShortTerm(ctx context.Context, userID, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM short_term_goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("falha ao excluir meta: %w", err)
	}
	if result.RowsAffected() == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}

// nullableText envia NULL para o banco quando o texto é vazio
func nullableText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
