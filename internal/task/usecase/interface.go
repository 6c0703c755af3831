// Package usecase implements business logic orchestration for task management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/tasks/internal/task/domain"
)

// CreateTaskInput contains the input data for task creation.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.Status
}

// UpdateTaskInput contains the patch data for a task update.
// Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.Status
}

// TaskUseCase defines the task business operations. Every operation takes the
// requesting principal's id and never touches records owned by anyone else.
type TaskUseCase interface {
	Create(ctx context.Context, principalID uuid.UUID, input *CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, principalID, taskID uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, principalID uuid.UUID, query domain.TaskQuery, offset, limit int) ([]*domain.Task, error)
	Update(ctx context.Context, principalID, taskID uuid.UUID, input *UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, principalID, taskID uuid.UUID) error
}

// TaskRepository defines task persistence operations. All lookups are scoped
// by owner; implementations treat a wrong-owner id exactly like a missing row.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)
	Find(ctx context.Context, filter domain.TaskFilter, offset, limit int) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, taskID, ownerID uuid.UUID) error
}
