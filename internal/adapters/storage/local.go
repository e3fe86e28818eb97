package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ScreenshotStore persists payment proof images and returns an opaque
// path the caller stores verbatim.
type ScreenshotStore interface {
	Save(ctx context.Context, originalFilename string, r io.Reader) (string, error)
}

// LocalStorage writes screenshots to a directory on local disk.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates a local disk store rooted at dir
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save writes the file under a random name, keeping the original
// extension. The original filename is never trusted for the path.
func (s *LocalStorage) Save(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write screenshot file: %w", err)
	}

	return path, nil
}

// Dir returns the root directory screenshots are written to
func (s *LocalStorage) Dir() string {
	return s.dir
}
