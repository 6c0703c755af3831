package app

import (
	"fmt"

	taskHTTP "github.com/allisson/tasks/internal/task/http"
	taskRepository "github.com/allisson/tasks/internal/task/repository"
	taskUseCase "github.com/allisson/tasks/internal/task/usecase"
)

// TaskRepository returns the task repository based on the database driver.
func (c *Container) TaskRepository() (taskUseCase.TaskRepository, error) {
	var err error
	c.taskRepoInit.Do(func() {
		c.taskRepo, err = c.initTaskRepository()
		if err != nil {
			c.initErrors["taskRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["taskRepo"]; exists {
		return nil, storedErr
	}
	return c.taskRepo, nil
}

// TaskUseCase returns the task use case.
func (c *Container) TaskUseCase() (taskUseCase.TaskUseCase, error) {
	var err error
	c.taskUseCaseInit.Do(func() {
		c.taskUC, err = c.initTaskUseCase()
		if err != nil {
			c.initErrors["taskUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["taskUseCase"]; exists {
		return nil, storedErr
	}
	return c.taskUC, nil
}

// TaskHandler returns the HTTP handler for task operations.
func (c *Container) TaskHandler() (*taskHTTP.TaskHandler, error) {
	var err error
	c.taskHandlerInit.Do(func() {
		c.taskHandler, err = c.initTaskHandler()
		if err != nil {
			c.initErrors["taskHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["taskHandler"]; exists {
		return nil, storedErr
	}
	return c.taskHandler, nil
}

// initTaskRepository creates the task repository based on the database driver.
func (c *Container) initTaskRepository() (taskUseCase.TaskRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for task repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return taskRepository.NewPostgreSQLTaskRepository(db), nil
	case "mysql":
		return taskRepository.NewMySQLTaskRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTaskUseCase creates the task use case with all its dependencies.
func (c *Container) initTaskUseCase() (taskUseCase.TaskUseCase, error) {
	taskRepo, err := c.TaskRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get task repository for task use case: %w", err)
	}

	baseUseCase := taskUseCase.NewTaskUseCase(taskRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for task use case: %w", err)
		}
		return taskUseCase.NewTaskUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initTaskHandler creates the task HTTP handler with all its dependencies.
func (c *Container) initTaskHandler() (*taskHTTP.TaskHandler, error) {
	taskUC, err := c.TaskUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get task use case for task handler: %w", err)
	}

	logger := c.Logger()

	return taskHTTP.NewTaskHandler(taskUC, logger), nil
}
