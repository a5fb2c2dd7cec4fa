package repository

import (
	"context"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// ListByProject retrieves the tasks of a project
func (r *GormTaskRepository) ListByProject(ctx context.Context, projectID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create creates a new task with done = false
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	task.Done = false
	return r.db.WithContext(ctx).Omit("Project").Create(task).Error
}

// Toggle flips the done flag. Returns gorm.ErrRecordNotFound when no row
// has the given id.
func (r *GormTaskRepository) Toggle(ctx context.Context, id uint64) (*models.Task, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&models.Task{}).
		Where("id = ?", id).
		UpdateColumn("done", gorm.Expr("NOT done"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var task models.Task
	if err := db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Completion returns total and done counts from a single aggregate so both
// numbers describe the same snapshot.
func (r *GormTaskRepository) Completion(ctx context.Context, projectID uint64) (CompletionCounts, error) {
	var counts CompletionCounts
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN done THEN 1 ELSE 0 END), 0) AS done").
		Where("project_id = ?", projectID).
		Scan(&counts).Error
	if err != nil {
		return CompletionCounts{}, err
	}
	return counts, nil
}
