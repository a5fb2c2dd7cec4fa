package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/project-tracker-api/internal/errors"
	"github.com/yukikurage/project-tracker-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *slog.Logger
}

func NewProjectHandler(projectService *services.ProjectService, logger *slog.Logger) *ProjectHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects returns all projects, newest first
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}
