package dto

import "github.com/yukikurage/project-tracker-api/internal/models"

// CreateProjectRequest is the body of POST /projects
type CreateProjectRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
}

// CompletionResponse is the body of GET /projects/:id/completion
type CompletionResponse struct {
	Percentage int `json:"percentage"`
}
