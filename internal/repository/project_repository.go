package repository

import (
	"context"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// List returns all projects ordered by created_at descending. id breaks
// ties between rows created within the same clock tick.
func (r *GormProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}
