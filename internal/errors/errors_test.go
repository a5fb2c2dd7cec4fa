package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cause := stderrors.New("driver exploded")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("name is required"), http.StatusBadRequest},
		{"not found", NotFound("File not found"), http.StatusNotFound},
		{"referential integrity", ReferentialIntegrity("project does not exist", cause), http.StatusInternalServerError},
		{"store", Store("Failed to fetch projects", cause), http.StatusInternalServerError},
		{"upload", Upload("No file uploaded", nil), http.StatusBadRequest},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("Task not found")), http.StatusNotFound},
		{"foreign", cause, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestAppError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("Task not found"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStore)
}

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Store("Failed to create task", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to create task: connection refused", err.Error())
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, "title is required", MessageFor(Validation("title is required")))
	assert.Equal(t, "Internal server error", MessageFor(stderrors.New("secret detail")))
}

func TestRespond_WritesPlainText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/files/1/view", nil)

	Respond(c, nil, NotFound("File not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
