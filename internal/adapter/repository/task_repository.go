package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// TaskRepository implementa task.Repository usando PostgreSQL
type TaskRepository struct {
	db DB
}

// NewTaskRepository cria uma nova instância de TaskRepository
func NewTaskRepository(db DB) task.Repository {
	return &TaskRepository{
		db: db,
	}
}

const taskColumns = `id, user_id, title, description, completed, estimated_time, due_date, priority, related_goal_id, daily, created_at, updated_at`

// Create implementa task.Repository.Create
func (r *TaskRepository) Create(ctx context.Context, tasks ...*task.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, t := range tasks {
			batch.Queue(`INSERT INTO tasks (`+taskColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
				t.ID, t.UserID, t.Title, t.Description, t.Completed,
				nullableInt(t.EstimatedTime), nullableTime(t.DueDate), string(t.Priority),
				nullableText(t.RelatedGoalID), t.Daily, t.CreatedAt, t.UpdatedAt,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for range tasks {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("falha ao inserir tarefa: %w", err)
			}
		}
		return results.Close()
	})
}

func scanTask(row pgx.Row) (*task.Task, error) {
	t := &task.Task{}
	var estimated pgtype.Int4
	var due pgtype.Timestamptz
	var related pgtype.Text
	var priority string

	if err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed,
		&estimated, &due, &priority, &related, &t.Daily, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if estimated.Valid {
		minutes := int(estimated.Int32)
		t.EstimatedTime = &minutes
	}
	if due.Valid {
		d := due.Time
		t.DueDate = &d
	}
	if related.Valid {
		t.RelatedGoalID = related.String
	}
	t.Priority = task.Priority(priority)
	return t, nil
}

// FindByID implementa task.Repository.FindByID
func (r *TaskRepository) FindByID(ctx context.Context, userID, id string) (*task.Task, error) {
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, fmt.Errorf("falha ao buscar tarefa: %w", err)
	}
	return t, nil
}

// List implementa task.Repository.List
func (r *TaskRepository) List(ctx context.Context, userID string) ([]*task.Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1
		ORDER BY due_date ASC NULLS LAST, created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tarefas: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler tarefa: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update implementa task.Repository.Update
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	t.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, estimated_time = $4, due_date = $5,
			priority = $6, related_goal_id = $7, daily = $8, updated_at = $9
		WHERE id = $10 AND user_id = $11
	`,
		t.Title, t.Description, t.Completed, nullableInt(t.EstimatedTime), nullableTime(t.DueDate),
		string(t.Priority), nullableText(t.RelatedGoalID), t.Daily, t.UpdatedAt, t.ID, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar tarefa: %w", err)
	}
	if result.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Delete implementa task.Repository.Delete
func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("falha ao excluir tarefa: %w", err)
	}
	if result.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func nullableInt(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}

func nullableTime(v *time.Time) pgtype.Timestamptz {
	if v == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *v, Valid: true}
}
