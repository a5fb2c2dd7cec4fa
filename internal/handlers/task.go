package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/project-tracker-api/internal/errors"
	"github.com/yukikurage/project-tracker-api/internal/middleware"
	"github.com/yukikurage/project-tracker-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
	logger      *slog.Logger
}

func NewTaskHandler(taskService *services.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks returns the tasks of the project in the path
func (h *TaskHandler) ListTasks(c *gin.Context) {
	projectID, ok := middleware.GetID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), projectID)
	if err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask adds a task to the project in the path
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, ok := middleware.GetID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), projectID, req.Title)
	if err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ToggleTask flips the done flag of a task
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	taskID, ok := middleware.GetID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.ToggleTask(c.Request.Context(), taskID)
	if err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Completion returns the share of done tasks as an integer percentage
func (h *TaskHandler) Completion(c *gin.Context) {
	projectID, ok := middleware.GetID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	percentage, err := h.taskService.Completion(c.Request.Context(), projectID)
	if err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompletionResponse{Percentage: percentage})
}
