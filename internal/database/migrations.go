package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

type tableIndex struct {
	model   any
	table   string
	name    string
	columns string
}

var indexes = []tableIndex{
	// Project listing is newest first
	{&models.Project{}, "projects", "idx_projects_created_at", "created_at"},

	// Per-project lookups and completion counts
	{&models.Task{}, "tasks", "idx_tasks_project_id", "project_id"},
	{&models.FileAttachment{}, "files", "idx_files_project_id", "project_id"},
}

// AddIndexes creates the lookup indexes that are not already present.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			slog.Debug("index already exists, skipping", slog.String("index", idx.name))
			continue
		}

		stmt := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", slog.String("index", idx.name), slog.String("table", idx.table))
	}

	return nil
}
