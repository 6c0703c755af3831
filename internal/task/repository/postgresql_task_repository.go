// Package repository implements data persistence for task records.
// Repositories support both PostgreSQL and MySQL; every query carries the
// ownership term so records from other owners are indistinguishable from
// missing ones.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/allisson/tasks/internal/database"
	apperrors "github.com/allisson/tasks/internal/errors"
	taskDomain "github.com/allisson/tasks/internal/task/domain"
)

// PostgreSQLTaskRepository implements task persistence for PostgreSQL databases.
type PostgreSQLTaskRepository struct {
	db *sql.DB
}

// NewPostgreSQLTaskRepository creates a new PostgreSQL task repository instance.
func NewPostgreSQLTaskRepository(db *sql.DB) *PostgreSQLTaskRepository {
	return &PostgreSQLTaskRepository{db: db}
}

// Create inserts a new task.
func (p *PostgreSQLTaskRepository) Create(ctx context.Context, task *taskDomain.Task) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tasks (id, owner_id, title, description, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create task")
	}
	return nil
}

// GetByID retrieves a task by id and owner. A task owned by someone else
// returns ErrTaskNotFound, same as a missing row.
func (p *PostgreSQLTaskRepository) GetByID(
	ctx context.Context,
	taskID, ownerID uuid.UUID,
) (*taskDomain.Task, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, title, description, status, created_at, updated_at
			  FROM tasks
			  WHERE id = $1 AND owner_id = $2`

	var task taskDomain.Task
	err := querier.QueryRowContext(ctx, query, taskID, ownerID).Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, taskDomain.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get task by id")
	}

	return &task, nil
}

// Find searches tasks matching the filter. Title and description match as
// case-insensitive substrings (ILIKE); status matches exactly; the ownership
// term is always present.
func (p *PostgreSQLTaskRepository) Find(
	ctx context.Context,
	filter taskDomain.TaskFilter,
	offset, limit int,
) ([]*taskDomain.Task, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, title, description, status, created_at, updated_at
			  FROM tasks
			  WHERE owner_id = $1`
	args := []any{filter.OwnerID}

	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	if filter.Description != "" {
		args = append(args, "%"+filter.Description+"%")
		query += fmt.Sprintf(" AND description ILIKE $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find tasks")
	}
	defer func() {
		_ = rows.Close()
	}()

	// Initialize empty slice to avoid returning nil for empty results
	tasks := make([]*taskDomain.Task, 0)
	for rows.Next() {
		var task taskDomain.Task
		if err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan task")
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating task rows")
	}

	return tasks, nil
}

// Update saves a task's mutable fields, scoped by id and owner.
// Zero affected rows surface as ErrTaskNotFound.
func (p *PostgreSQLTaskRepository) Update(ctx context.Context, task *taskDomain.Task) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE tasks
			  SET title = $1, description = $2, status = $3, updated_at = $4
			  WHERE id = $5 AND owner_id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update task")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return taskDomain.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task, scoped by id and owner.
// Zero affected rows surface as ErrTaskNotFound.
func (p *PostgreSQLTaskRepository) Delete(ctx context.Context, taskID, ownerID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	result, err := querier.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete task")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return taskDomain.ErrTaskNotFound
	}

	return nil
}
