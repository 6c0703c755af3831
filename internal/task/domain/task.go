// Package domain defines the core task domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tasks/internal/errors"
)

// Status is the lifecycle state of a task.
type Status string

const (
	// StatusPending marks a task that has not been completed yet.
	StatusPending Status = "pending"

	// StatusCompleted marks a finished task.
	StatusCompleted Status = "completed"
)

// Valid reports whether the status is one of the allowed values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task represents a task record. Every read, write and delete is scoped by
// OwnerID: a record owned by another user behaves exactly like a record that
// does not exist.
type Task struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Domain-specific errors for task operations.
var (
	// ErrTaskNotFound indicates the task does not exist for the requesting
	// owner. A task owned by someone else produces the same error so that
	// responses never reveal whether the record exists.
	ErrTaskNotFound = errors.Wrap(errors.ErrNotFound, "task not found")

	// ErrInvalidStatus indicates the status is not one of the allowed values.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "status must be one of: pending, completed")

	// ErrTitleRequired indicates the title field is required.
	ErrTitleRequired = errors.Wrap(errors.ErrInvalidInput, "title is required")
)
