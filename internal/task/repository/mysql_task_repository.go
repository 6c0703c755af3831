package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/tasks/internal/database"
	apperrors "github.com/allisson/tasks/internal/errors"
	taskDomain "github.com/allisson/tasks/internal/task/domain"
)

// MySQLTaskRepository implements task persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLTaskRepository struct {
	db *sql.DB
}

// NewMySQLTaskRepository creates a new MySQL task repository.
func NewMySQLTaskRepository(db *sql.DB) *MySQLTaskRepository {
	return &MySQLTaskRepository{db: db}
}

// Create inserts a new task into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLTaskRepository) Create(ctx context.Context, task *taskDomain.Task) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO tasks (id, owner_id, title, description, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := task.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal task id")
	}
	ownerID, err := task.OwnerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal owner id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		ownerID,
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
func (m *MySQLTaskRepository) GetByID(
	ctx context.Context,
	taskID, ownerID uuid.UUID,
) (*taskDomain.Task, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, owner_id, title, description, status, created_at, updated_at
			  FROM tasks
			  WHERE id = ? AND owner_id = ?`

	id, err := taskID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal task id")
	}
	owner, err := ownerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal owner id")
	}

	var task taskDomain.Task
	var idBytes, ownerBytes []byte

	err = querier.QueryRowContext(ctx, query, id, owner).Scan(
		&idBytes,
		&ownerBytes,
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
		return nil, apperrors.Wrap(err, "failed to get task")
	}

	if err := task.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal task id")
	}
	if err := task.OwnerID.UnmarshalBinary(ownerBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal owner id")
	}

	return &task, nil
}

// Find searches tasks matching the filter. Title and description match as
// case-insensitive substrings; status matches exactly; the ownership term is
// always present.
func (m *MySQLTaskRepository) Find(
	ctx context.Context,
	filter taskDomain.TaskFilter,
	offset, limit int,
) ([]*taskDomain.Task, error) {
	querier := database.GetTx(ctx, m.db)

	owner, err := filter.OwnerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal owner id")
	}

	query := `SELECT id, owner_id, title, description, status, created_at, updated_at
			  FROM tasks
			  WHERE owner_id = ?`
	args := []any{owner}

	if filter.Title != "" {
		query += " AND LOWER(title) LIKE LOWER(?)"
		args = append(args, "%"+filter.Title+"%")
	}
	if filter.Description != "" {
		query += " AND LOWER(description) LIKE LOWER(?)"
		args = append(args, "%"+filter.Description+"%")
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

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
		var idBytes, ownerBytes []byte

		err := rows.Scan(
			&idBytes,
			&ownerBytes,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan task row")
		}

		if err := task.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal task id")
		}
		if err := task.OwnerID.UnmarshalBinary(ownerBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal owner id")
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
func (m *MySQLTaskRepository) Update(ctx context.Context, task *taskDomain.Task) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE tasks
			  SET title = ?,
			  	  description = ?,
				  status = ?,
				  updated_at = ?
			  WHERE id = ? AND owner_id = ?`

	id, err := task.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal task id")
	}
	ownerID, err := task.OwnerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal owner id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
		id,
		ownerID,
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
func (m *MySQLTaskRepository) Delete(ctx context.Context, taskID, ownerID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM tasks WHERE id = ? AND owner_id = ?`

	id, err := taskID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal task id")
	}
	owner, err := ownerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal owner id")
	}

	result, err := querier.ExecContext(ctx, query, id, owner)
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
