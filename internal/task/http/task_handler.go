// Package http provides HTTP handlers for task management operations.
// Every handler resolves the requesting principal from the context set by the
// authentication middleware; tasks owned by other principals are invisible.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/tasks/internal/auth/http"
	"github.com/allisson/tasks/internal/httputil"
	taskDomain "github.com/allisson/tasks/internal/task/domain"
	"github.com/allisson/tasks/internal/task/http/dto"
	taskUseCase "github.com/allisson/tasks/internal/task/usecase"
	customValidation "github.com/allisson/tasks/internal/validation"
)

// TaskHandler handles HTTP requests for task management operations.
type TaskHandler struct {
	taskUseCase taskUseCase.TaskUseCase
	logger      *slog.Logger
}

// NewTaskHandler creates a new task handler with required dependencies.
func NewTaskHandler(taskUseCase taskUseCase.TaskUseCase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskUseCase: taskUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a new task owned by the requesting principal.
// POST /v1/tasks - Requires a valid bearer token.
// Returns 201 Created with the task.
func (h *TaskHandler) CreateHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, fmt.Errorf("missing principal in context"), h.logger)
		return
	}

	var req dto.CreateTaskRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	task, err := h.taskUseCase.Create(c.Request.Context(), principal.ID, &taskUseCase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      taskDomain.Status(req.Status),
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTaskToResponse(task))
}

// GetHandler retrieves a task by id, scoped to the requesting principal.
// GET /v1/tasks/:id - Requires a valid bearer token.
// Returns 200 OK with the task, 404 if it doesn't exist or belongs to someone else.
func (h *TaskHandler) GetHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, fmt.Errorf("missing principal in context"), h.logger)
		return
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	task, err := h.taskUseCase.Get(c.Request.Context(), principal.ID, taskID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTaskToResponse(task))
}

// ListHandler searches the principal's tasks with optional query terms.
// GET /v1/tasks?title=...&description=...&status=...&offset=0&limit=50
// Title and description match as case-insensitive substrings; status matches
// exactly. Returns 200 OK with the matching tasks.
func (h *TaskHandler) ListHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, fmt.Errorf("missing principal in context"), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	query := taskDomain.TaskQuery{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Status:      taskDomain.Status(c.Query("status")),
	}

	tasks, err := h.taskUseCase.List(c.Request.Context(), principal.ID, query, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTasksToListResponse(tasks))
}

// UpdateHandler applies a partial update to a task.
// PATCH /v1/tasks/:id - Requires a valid bearer token.
// Returns 200 OK with the updated task, 404 if it doesn't exist or belongs to
// someone else.
func (h *TaskHandler) UpdateHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, fmt.Errorf("missing principal in context"), h.logger)
		return
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateTaskRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &taskUseCase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := taskDomain.Status(*req.Status)
		input.Status = &status
	}

	task, err := h.taskUseCase.Update(c.Request.Context(), principal.ID, taskID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTaskToResponse(task))
}

// DeleteHandler removes a task.
// DELETE /v1/tasks/:id - Requires a valid bearer token.
// Returns 204 No Content, 404 if it doesn't exist or belongs to someone else.
func (h *TaskHandler) DeleteHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, fmt.Errorf("missing principal in context"), h.logger)
		return
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.taskUseCase.Delete(c.Request.Context(), principal.ID, taskID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseTaskID extracts and validates the task id URL parameter.
func parseTaskID(c *gin.Context) (uuid.UUID, error) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid task id: must be a valid UUID")
	}
	return taskID, nil
}
