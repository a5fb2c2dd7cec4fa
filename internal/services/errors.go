package services

import (
	"errors"
	"strings"

	apierrors "github.com/yukikurage/project-tracker-api/internal/errors"
	"gorm.io/gorm"
)

var (
	ErrNameRequired    = apierrors.Validation("name is required")
	ErrTitleRequired   = apierrors.Validation("title is required")
	ErrNoFileUploaded  = apierrors.Upload("No file uploaded", nil)
	ErrTaskNotFound    = apierrors.NotFound("Task not found")
	ErrFileNotFound    = apierrors.NotFound("File not found")
	ErrContentNotFound = apierrors.NotFound("File content not found")
)

// storeError translates a GORM error into the API taxonomy. message is
// what the client sees for a generic failure.
func storeError(err error, message string) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated), isForeignKeyMessage(err):
		return apierrors.ReferentialIntegrity("Referenced project does not exist", err)
	default:
		return apierrors.Store(message, err)
	}
}

// Some drivers report FK failures without a translatable code.
func isForeignKeyMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint")
}
