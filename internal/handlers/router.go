package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker-api/internal/middleware"
)

// RouterConfig holds everything the router needs
type RouterConfig struct {
	Projects  *ProjectHandler
	Tasks     *TaskHandler
	Files     *FileHandler
	UploadDir string
	Logger    *slog.Logger
}

// NewRouter builds the gin engine with every route registered
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Project Tracker API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Project Tracker API is running",
		})
	})

	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	projects := r.Group("/projects")
	{
		projects.GET("", cfg.Projects.ListProjects)
		projects.POST("", cfg.Projects.CreateProject)
		projects.GET("/:id/tasks", middleware.RequireID("project"), cfg.Tasks.ListTasks)
		projects.POST("/:id/tasks", middleware.RequireID("project"), cfg.Tasks.CreateTask)
		projects.GET("/:id/completion", middleware.RequireID("project"), cfg.Tasks.Completion)
		projects.POST("/:id/upload", middleware.RequireID("project"), cfg.Files.UploadFile)
		projects.GET("/:id/files", middleware.RequireID("project"), cfg.Files.ListFiles)
	}

	r.PUT("/tasks/:id", middleware.RequireID("task"), cfg.Tasks.ToggleTask)
	r.GET("/files/:id/view", middleware.RequireID("file"), cfg.Files.ViewFile)

	return r
}
