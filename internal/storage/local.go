package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrContentMissing is returned when a stored path has no bytes behind it.
var ErrContentMissing = errors.New("stored file content is missing")

// LocalStore keeps uploaded files in a single directory on disk.
type LocalStore struct {
	root string
	now  func() time.Time
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, errors.New("empty upload directory")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{root: root, now: time.Now}, nil
}

// Root returns the upload directory.
func (s *LocalStore) Root() string {
	return s.root
}

// Save writes r under a name unique to this upload and returns the stored
// path. The name is "<unix millis>-<random>-<original base name>".
func (s *LocalStore) Save(r io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), uuid.NewString()[:8], sanitizeName(originalName))
	path := filepath.Join(s.root, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write stored file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close stored file: %w", err)
	}
	return path, nil
}

// Open returns the stored file for reading. Relative paths resolve
// against the working directory, matching what Save returns for a
// relative root. The caller closes the file.
func (s *LocalStore) Open(path string) (*os.File, error) {
	f, err := os.Open(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrContentMissing
	}
	if err != nil {
		return nil, fmt.Errorf("open stored file: %w", err)
	}
	return f, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}
