package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ErrResumeNotFound is returned by Open when the stored file no longer
// exists in the backend.
var ErrResumeNotFound = errors.New("resume file not found")

// ResumeStorage persists uploaded resume files. The path returned by Save
// is opaque to callers; it is stored on the lead and handed back to Open.
type ResumeStorage interface {
	Save(ctx context.Context, originalName string, reader io.Reader, size int64) (path string, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// storedName derives a unique storage name from the upload time and the
// original filename, so simultaneous uploads of the same file do not
// collide.
func storedName(originalName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
}

// LocalStorage keeps resumes in a directory on the local disk.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates a local storage rooted at dir, creating the
// directory if it does not exist.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(_ context.Context, originalName string, reader io.Reader, _ int64) (string, error) {
	path := filepath.Join(s.dir, storedName(originalName))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

func (s *LocalStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}
