package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-tracker-api/internal/errors"
	"github.com/yukikurage/project-tracker-api/internal/middleware"
	"github.com/yukikurage/project-tracker-api/internal/services"
)

const uploadFormField = "file"

type FileHandler struct {
	fileService *services.FileService
	logger      *slog.Logger
}

func NewFileHandler(fileService *services.FileService, logger *slog.Logger) *FileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileHandler{
		fileService: fileService,
		logger:      logger,
	}
}

// UploadFile stores the multipart "file" part for the project in the path
func (h *FileHandler) UploadFile(c *gin.Context) {
	projectID, ok := middleware.GetID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	header, err := c.FormFile(uploadFormField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			h.logger.Warn("failed to parse upload", slog.String("error", err.Error()))
		}
		apierrors.Respond(c, h.logger, services.ErrNoFileUploaded)
		return
	}

	src, err := header.Open()
	if err != nil {
		apierrors.Respond(c, h.logger, apierrors.Upload("Failed to read uploaded file", err))
		return
	}
	defer src.Close()

	if _, err := h.fileService.UploadFile(c.Request.Context(), projectID, header.Filename, src); err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}

	c.String(http.StatusCreated, "File uploaded successfully")
}

// ListFiles returns id and filename of each attachment of the project
func (h *FileHandler) ListFiles(c *gin.Context) {
	projectID, ok := middleware.GetID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	files, err := h.fileService.ListFiles(c.Request.Context(), projectID)
	if err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, files)
}

// ViewFile streams the stored bytes of an attachment inline
func (h *FileHandler) ViewFile(c *gin.Context) {
	fileID, ok := middleware.GetID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid file ID")
		return
	}

	meta, f, err := h.fileService.OpenFile(c.Request.Context(), fileID)
	if err != nil {
		apierrors.Respond(c, h.logger, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		apierrors.Respond(c, h.logger, apierrors.Store("Failed to read file", err))
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": meta.Filename}))
	http.ServeContent(c.Writer, c.Request, meta.Filename, info.ModTime(), f)
}
