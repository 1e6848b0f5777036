package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/organizer/core/internal/application/services"
	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// TaskHandler handles task-related requests, including the sharing routes
// mounted under /tasks.
type TaskHandler struct {
	taskService  *services.TaskService
	shareService *services.ShareService
	logger       *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService, shareService *services.ShareService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService:  taskService,
		shareService: shareService,
		logger:       logger,
	}
}

// ListTasks godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} entities.Task
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	userID := getUserIDFromContext(c)

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "List tasks failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, tasks)
}

// GetTask godoc
// @Summary Get a task with its sharing metadata
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} ports.TaskDetail
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), userID, taskID)
	if err != nil {
		return mapDomainError(h.logger, err, "Get task failed", "task_id", taskID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, task)
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body ports.CreateTaskRequest true "Task data"
// @Success 201 {object} ports.CreatedResponse
// @Failure 400 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	taskID, err := h.taskService.CreateTask(c.Request().Context(), userID, req)
	if err != nil {
		return mapDomainError(h.logger, err, "Create task failed", "user_id", userID)
	}

	return c.JSON(http.StatusCreated, ports.CreatedResponse{Message: "Task created successfully", ID: taskID})
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body ports.UpdateTaskRequest true "Task data"
// @Success 200 {object} ports.MessageResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.taskService.UpdateTask(c.Request().Context(), userID, taskID, req); err != nil {
		return mapDomainError(h.logger, err, "Update task failed", "task_id", taskID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Task updated successfully"})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} ports.MessageResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), userID, taskID); err != nil {
		return mapDomainError(h.logger, err, "Delete task failed", "task_id", taskID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Task deleted successfully"})
}

// CompleteTask godoc
// @Summary Mark a task completed
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} ports.MessageResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/complete [patch]
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	if err := h.taskService.CompleteTask(c.Request().Context(), userID, taskID); err != nil {
		return mapDomainError(h.logger, err, "Complete task failed", "task_id", taskID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Task completed successfully"})
}

// ShareTask godoc
// @Summary Share a task with another user
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body ports.ShareRequest true "Recipient"
// @Success 200 {object} ports.CreatedResponse
// @Failure 400 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Failure 409 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/share [post]
func (h *TaskHandler) ShareTask(c echo.Context) error {
	userID := getUserIDFromContext(c)

	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	var req ports.ShareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shareID, err := h.shareService.CreateShare(c.Request().Context(), entities.TaskRef(taskID), userID, req.SharedWith)
	if err != nil {
		return mapDomainError(h.logger, err, "Share task failed", "task_id", taskID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.CreatedResponse{Message: "Task shared successfully", ID: shareID})
}

// ListSharedWithMe godoc
// @Summary List tasks shared with the caller
// @Tags tasks
// @Produce json
// @Success 200 {array} entities.SharedTask
// @Security BearerAuth
// @Router /tasks/shared/with-me [get]
func (h *TaskHandler) ListSharedWithMe(c echo.Context) error {
	userID := getUserIDFromContext(c)

	tasks, err := h.shareService.ListTasksSharedWithMe(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "List shared tasks failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, tasks)
}

// ListSharedByMe godoc
// @Summary List tasks the caller has shared
// @Tags tasks
// @Produce json
// @Success 200 {array} entities.SharedTask
// @Security BearerAuth
// @Router /tasks/shared/by-me [get]
func (h *TaskHandler) ListSharedByMe(c echo.Context) error {
	userID := getUserIDFromContext(c)

	tasks, err := h.shareService.ListTasksSharedByMe(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "List shared tasks failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, tasks)
}
