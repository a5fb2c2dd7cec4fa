package dto

// CreateTaskRequest is the body of POST /projects/:id/tasks
type CreateTaskRequest struct {
	Title string `json:"title"`
}
