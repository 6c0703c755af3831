// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	taskDomain "github.com/allisson/tasks/internal/task/domain"
)

// CreateTaskRequest contains the parameters for creating a task.
// Status is optional and defaults to pending.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Validate checks if the create task request is valid.
func (r *CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Length(0, 4096),
		),
		validation.Field(&r.Status,
			validation.In(string(taskDomain.StatusPending), string(taskDomain.StatusCompleted)),
		),
	)
}

// UpdateTaskRequest contains the patch parameters for a task update.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Validate checks if the update task request is valid.
func (r *UpdateTaskRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Length(0, 4096),
		),
		validation.Field(&r.Status,
			validation.In(string(taskDomain.StatusPending), string(taskDomain.StatusCompleted)),
		),
	)
}
