package services

import (
	"context"
	"strings"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name        string
	Description string
	Status      models.ProjectStatus
}

// ListProjects returns every project, newest first
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, "Failed to fetch projects")
	}
	return projects, nil
}

// CreateProject validates input and inserts a project. Status defaults to "new".
func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if input.Status == "" {
		input.Status = models.ProjectStatusNew
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, storeError(err, "Failed to create project")
	}
	return project, nil
}
