package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-tracker-api/internal/config"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable("projects"))
	assert.True(t, migrator.HasTable("tasks"))
	assert.True(t, migrator.HasTable("files"))
	for _, idx := range indexes {
		assert.True(t, migrator.HasIndex(idx.model, idx.name), idx.name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.Project{Name: "kept", Status: models.ProjectStatusNew}).Error)

	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrate_CascadeDeletesDependents(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	project := models.Project{Name: "doomed", Status: models.ProjectStatusNew}
	require.NoError(t, db.Create(&project).Error)
	other := models.Project{Name: "survivor", Status: models.ProjectStatusNew}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&models.Task{Title: "a", ProjectID: project.ID}).Error)
	require.NoError(t, db.Create(&models.Task{Title: "b", ProjectID: other.ID}).Error)
	require.NoError(t, db.Create(&models.FileAttachment{Filename: "f.txt", Filepath: "uploads/f.txt", ProjectID: project.ID}).Error)

	require.NoError(t, db.Delete(&models.Project{}, project.ID).Error)

	var tasks, files int64
	require.NoError(t, db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&tasks).Error)
	require.NoError(t, db.Model(&models.FileAttachment{}).Where("project_id = ?", project.ID).Count(&files).Error)
	assert.Zero(t, tasks)
	assert.Zero(t, files)

	require.NoError(t, db.Model(&models.Task{}).Where("project_id = ?", other.ID).Count(&tasks).Error)
	assert.Equal(t, int64(1), tasks)
}

func TestMigrate_ForeignKeyEnforced(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	err := db.Create(&models.Task{Title: "orphan", ProjectID: 999}).Error
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})

	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestConnect_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseURL: "file::memory:?_foreign_keys=on",
		GinMode:     "release",
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, Migrate(db))
}
