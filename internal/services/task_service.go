package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// ListTasks returns the tasks of a project
func (s *TaskService) ListTasks(ctx context.Context, projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, storeError(err, "Failed to fetch tasks")
	}
	return tasks, nil
}

// CreateTask inserts a task under projectID. An unknown project surfaces
// as a referential integrity error from the store.
func (s *TaskService) CreateTask(ctx context.Context, projectID uint64, title string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	task := &models.Task{
		Title:     title,
		ProjectID: projectID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, storeError(err, "Failed to create task")
	}
	return task, nil
}

// ToggleTask flips a task's done flag
func (s *TaskService) ToggleTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.Toggle(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, storeError(err, "Failed to update task")
	}
	return task, nil
}

// Completion returns the integer percentage of done tasks in a project
func (s *TaskService) Completion(ctx context.Context, projectID uint64) (int, error) {
	counts, err := s.taskRepo.Completion(ctx, projectID)
	if err != nil {
		return 0, storeError(err, "Failed to compute completion")
	}
	return CompletionPercentage(counts.Total, counts.Done), nil
}

// CompletionPercentage is round-half-up(100 * done / total), or 0 without tasks.
func CompletionPercentage(total, done int64) int {
	if total <= 0 {
		return 0
	}
	done = min(max(done, 0), total)
	// integer form of floor(100*done/total + 0.5)
	return int((200*done + total) / (2 * total))
}
