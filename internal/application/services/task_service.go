package services

import (
	"context"
	"fmt"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// TaskService handles ownership-scoped task operations. The callerID passed
// into every method is the authenticated principal; a task that belongs to
// another user looks exactly like a missing task.
type TaskService struct {
	taskRepo  ports.TaskRepository
	shareRepo ports.ShareRepository
	logger    *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, shareRepo ports.ShareRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		shareRepo: shareRepo,
		logger:    logger,
	}
}

// ListTasks returns the caller's tasks, most recent first
func (s *TaskService) ListTasks(ctx context.Context, callerID int64) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// GetTask returns one of the caller's tasks along with its sharing metadata,
// so the detail view can render share state without a second round trip.
func (s *TaskService) GetTask(ctx context.Context, callerID, taskID int64) (*ports.TaskDetail, error) {
	task, err := s.taskRepo.GetByIDForOwner(ctx, taskID, callerID)
	if err != nil {
		return nil, err
	}

	recipients, err := s.shareRepo.ListRecipients(ctx, entities.TaskRef(taskID))
	if err != nil {
		return nil, fmt.Errorf("failed to load sharing info: %w", err)
	}

	return &ports.TaskDetail{
		Task:        *task,
		SharingInfo: recipients,
	}, nil
}

// CreateTask creates a new task owned by the caller and returns its id
func (s *TaskService) CreateTask(ctx context.Context, callerID int64, req ports.CreateTaskRequest) (int64, error) {
	task := &entities.Task{
		UserID:      callerID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      entities.TaskStatusPending,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created successfully", "task_id", task.ID, "user_id", callerID)

	return task.ID, nil
}

// UpdateTask updates a task owned by the caller
func (s *TaskService) UpdateTask(ctx context.Context, callerID, taskID int64, req ports.UpdateTaskRequest) error {
	task := &entities.Task{
		ID:          taskID,
		UserID:      callerID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return err
	}

	s.logger.Info("Task updated successfully", "task_id", taskID, "user_id", callerID)

	return nil
}

// DeleteTask deletes a task owned by the caller
func (s *TaskService) DeleteTask(ctx context.Context, callerID, taskID int64) error {
	if err := s.taskRepo.Delete(ctx, taskID, callerID); err != nil {
		return err
	}

	s.logger.Info("Task deleted successfully", "task_id", taskID, "user_id", callerID)

	return nil
}

// CompleteTask marks a task owned by the caller as completed
func (s *TaskService) CompleteTask(ctx context.Context, callerID, taskID int64) error {
	if err := s.taskRepo.SetStatus(ctx, taskID, callerID, entities.TaskStatusCompleted); err != nil {
		return err
	}

	s.logger.Info("Task completed", "task_id", taskID, "user_id", callerID)

	return nil
}
