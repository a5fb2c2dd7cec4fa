package repository

import (
	"context"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormFileRepository is a GORM implementation of FileRepository
type GormFileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &GormFileRepository{db: db}
}

// ListByProject selects id and filename only
func (r *GormFileRepository) ListByProject(ctx context.Context, projectID uint64) ([]dto.FileListItem, error) {
	files := []dto.FileListItem{}
	if err := r.db.WithContext(ctx).
		Model(&models.FileAttachment{}).
		Select("id", "filename").
		Where("project_id = ?", projectID).
		Order("id ASC").
		Scan(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// FindByID finds a file attachment by ID
func (r *GormFileRepository) FindByID(ctx context.Context, id uint64) (*models.FileAttachment, error) {
	var file models.FileAttachment
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// Create creates a new file attachment row
func (r *GormFileRepository) Create(ctx context.Context, file *models.FileAttachment) error {
	return r.db.WithContext(ctx).Omit("Project").Create(file).Error
}
