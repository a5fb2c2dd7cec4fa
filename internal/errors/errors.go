package errors

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies an error for the HTTP boundary.
type Kind string

const (
	KindValidation           Kind = "VALIDATION"
	KindNotFound             Kind = "NOT_FOUND"
	KindReferentialIntegrity Kind = "REFERENTIAL_INTEGRITY"
	KindStore                Kind = "STORE"
	KindUpload               Kind = "UPLOAD"
)

// AppError carries a kind, a terse client-facing message and the
// underlying cause, which is only ever logged.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same kind, so callers can write
// errors.Is(err, apierrors.ErrNotFound).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: cause}
}

func Validation(message string) *AppError {
	return newError(KindValidation, message, nil)
}

func NotFound(message string) *AppError {
	return newError(KindNotFound, message, nil)
}

func ReferentialIntegrity(message string, cause error) *AppError {
	return newError(KindReferentialIntegrity, message, cause)
}

func Store(message string, cause error) *AppError {
	return newError(KindStore, message, cause)
}

func Upload(message string, cause error) *AppError {
	return newError(KindUpload, message, cause)
}

// Kind sentinels for errors.Is
var (
	ErrValidation           = &AppError{Kind: KindValidation}
	ErrNotFound             = &AppError{Kind: KindNotFound}
	ErrReferentialIntegrity = &AppError{Kind: KindReferentialIntegrity}
	ErrStore                = &AppError{Kind: KindStore}
	ErrUpload               = &AppError{Kind: KindUpload}
)

var statusByKind = map[Kind]int{
	KindValidation:           http.StatusBadRequest,
	KindNotFound:             http.StatusNotFound,
	KindReferentialIntegrity: http.StatusInternalServerError,
	KindStore:                http.StatusInternalServerError,
	KindUpload:               http.StatusBadRequest,
}

// StatusFor maps an error onto its HTTP status. Anything outside the
// taxonomy is a 500.
func StatusFor(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		if status, ok := statusByKind[appErr.Kind]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// MessageFor returns the client-visible text for err.
func MessageFor(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Internal server error"
}

// Respond logs err and writes the mapped status with a plain-text body.
func Respond(c *gin.Context, logger *slog.Logger, err error) {
	status := StatusFor(err)
	if logger == nil {
		logger = slog.Default()
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(c.Request.Context(), level, "request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)

	c.String(status, MessageFor(err))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	c.String(http.StatusBadRequest, message)
}
