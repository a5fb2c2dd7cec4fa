package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/project-tracker-api/internal/errors"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"github.com/yukikurage/project-tracker-api/internal/storage"
	"gorm.io/gorm"
)

// FileService handles uploading and reading file attachments
type FileService struct {
	fileRepo repository.FileRepository
	store    *storage.LocalStore
	logger   *slog.Logger
}

// NewFileService creates a new FileService
func NewFileService(fileRepo repository.FileRepository, store *storage.LocalStore, logger *slog.Logger) *FileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileService{
		fileRepo: fileRepo,
		store:    store,
		logger:   logger,
	}
}

// UploadFile writes content to disk and then records its metadata. The two
// steps are not atomic: if the insert fails the bytes stay on disk.
func (s *FileService) UploadFile(ctx context.Context, projectID uint64, filename string, content io.Reader) (*models.FileAttachment, error) {
	path, err := s.store.Save(content, filename)
	if err != nil {
		return nil, apierrors.Store("Failed to store file", err)
	}

	file := &models.FileAttachment{
		Filename:  filename,
		Filepath:  path,
		ProjectID: projectID,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		s.logger.Warn("file written without metadata row",
			slog.String("filepath", path),
			slog.Uint64("project_id", projectID),
		)
		return nil, storeError(err, "Failed to save file metadata")
	}
	return file, nil
}

// ListFiles returns id and filename of each attachment of a project
func (s *FileService) ListFiles(ctx context.Context, projectID uint64) ([]dto.FileListItem, error) {
	files, err := s.fileRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, storeError(err, "Failed to fetch files")
	}
	return files, nil
}

// GetFile returns the metadata row of an attachment
func (s *FileService) GetFile(ctx context.Context, fileID uint64) (*models.FileAttachment, error) {
	file, err := s.fileRepo.FindByID(ctx, fileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, storeError(err, "Failed to fetch file")
	}
	return file, nil
}

// OpenFile returns the metadata and the open content of an attachment.
// A metadata row whose bytes are gone is reported as ErrContentNotFound.
func (s *FileService) OpenFile(ctx context.Context, fileID uint64) (*models.FileAttachment, *os.File, error) {
	file, err := s.GetFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	f, err := s.store.Open(file.Filepath)
	if errors.Is(err, storage.ErrContentMissing) {
		return nil, nil, ErrContentNotFound
	}
	if err != nil {
		return nil, nil, apierrors.Store("Failed to read file", err)
	}
	return file, f, nil
}
