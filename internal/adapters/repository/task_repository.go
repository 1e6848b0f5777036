package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (user_id, title, description, due_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.DueDate, task.Status,
	).Scan(&task.ID, &task.CreatedAt)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// GetByIDForOwner fetches a task scoped to its owner. A task that belongs to
// someone else is indistinguishable from a missing one.
func (r *TaskRepositoryImpl) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*entities.Task, error) {
	query := `
		SELECT id, user_id, title, description, due_date, status, created_at
		FROM tasks
		WHERE id = $1 AND user_id = $2`

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	query := `SELECT user_id FROM tasks WHERE id = $1`

	var ownerID int64
	err := r.db.GetContext(ctx, &ownerID, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, entities.ErrTaskNotFound
		}
		return 0, fmt.Errorf("get task owner: %w", err)
	}

	return ownerID, nil
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Task, error) {
	query := `
		SELECT id, user_id, title, description, due_date, status, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC`

	tasks := []*entities.Task{}
	err := r.db.SelectContext(ctx, &tasks, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entities.Task) error {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, due_date = $5
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.DueDate)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	return checkAffected(result, entities.ErrTaskNotFound)
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	return checkAffected(result, entities.ErrTaskNotFound)
}

func (r *TaskRepositoryImpl) SetStatus(ctx context.Context, id, ownerID int64, status entities.TaskStatus) error {
	query := `UPDATE tasks SET status = $3 WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID, status)
	if err != nil {
		return fmt.Errorf("set task status: %w", err)
	}

	return checkAffected(result, entities.ErrTaskNotFound)
}
