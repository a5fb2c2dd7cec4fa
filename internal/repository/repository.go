package repository

import (
	"context"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// List returns every project, newest first
	List(ctx context.Context) ([]models.Project, error)

	// Create inserts a project and fills in its generated id and timestamp
	Create(ctx context.Context, project *models.Project) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// ListByProject returns the tasks of a project in storage order
	ListByProject(ctx context.Context, projectID uint64) ([]models.Task, error)

	// Create inserts a task. The project is not checked beforehand;
	// the store rejects unknown project ids.
	Create(ctx context.Context, task *models.Task) error

	// Toggle flips done in place and returns the updated row
	Toggle(ctx context.Context, id uint64) (*models.Task, error)

	// Completion counts all and done tasks of a project in one statement
	Completion(ctx context.Context, projectID uint64) (CompletionCounts, error)
}

// FileRepository defines the interface for file attachment metadata
type FileRepository interface {
	// ListByProject returns id and filename of every attachment of a project
	ListByProject(ctx context.Context, projectID uint64) ([]dto.FileListItem, error)

	// FindByID returns the full metadata row
	FindByID(ctx context.Context, id uint64) (*models.FileAttachment, error)

	// Create inserts a metadata row for bytes already on disk
	Create(ctx context.Context, file *models.FileAttachment) error
}

// CompletionCounts holds the aggregate used for the completion percentage
type CompletionCounts struct {
	Total int64
	Done  int64
}
