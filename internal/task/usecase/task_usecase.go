package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tasks/internal/task/domain"
)

// taskUseCase implements TaskUseCase.
type taskUseCase struct {
	taskRepo TaskRepository
}

// NewTaskUseCase creates a new TaskUseCase with the provided dependencies.
func NewTaskUseCase(taskRepo TaskRepository) TaskUseCase {
	return &taskUseCase{taskRepo: taskRepo}
}

// Create creates a task owned by the requesting principal.
// An empty status defaults to pending; anything outside the enum fails with
// ErrInvalidStatus.
func (t *taskUseCase) Create(
	ctx context.Context,
	principalID uuid.UUID,
	input *CreateTaskInput,
) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.Must(uuid.NewV7()),
		OwnerID:     principalID,
		Title:       title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Get retrieves a task by id, scoped to the requesting principal.
func (t *taskUseCase) Get(ctx context.Context, principalID, taskID uuid.UUID) (*domain.Task, error) {
	return t.taskRepo.GetByID(ctx, taskID, principalID)
}

// List searches the principal's tasks with the supplied query terms.
// The ownership term always applies; it cannot be supplied or removed by the
// caller.
func (t *taskUseCase) List(
	ctx context.Context,
	principalID uuid.UUID,
	query domain.TaskQuery,
	offset, limit int,
) ([]*domain.Task, error) {
	if query.Status != "" && !query.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	filter := domain.ScopedFilter(principalID, query)
	return t.taskRepo.Find(ctx, filter, offset, limit)
}

// Update applies a patch to a task, scoped to the requesting principal.
// A task owned by someone else surfaces as ErrTaskNotFound.
func (t *taskUseCase) Update(
	ctx context.Context,
	principalID, taskID uuid.UUID,
	input *UpdateTaskInput,
) (*domain.Task, error) {
	task, err := t.taskRepo.GetByID(ctx, taskID, principalID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		task.Status = *input.Status
	}

	task.UpdatedAt = time.Now().UTC()

	if err := t.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes a task, scoped to the requesting principal.
func (t *taskUseCase) Delete(ctx context.Context, principalID, taskID uuid.UUID) error {
	return t.taskRepo.Delete(ctx, taskID, principalID)
}
