package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const archiveDir = "oldPlants"

// LocalStorage keeps uploads on the local filesystem under baseDir and
// serves them by relative URL. Replaced files are moved into an
// oldPlants/ subdirectory instead of being deleted.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, archiveDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

func (s *LocalStorage) Save(filename string, src io.Reader) (string, error) {
	name := uniqueName(filename)
	path := filepath.Join(s.baseDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/" + filepath.ToSlash(path), nil
}

func (s *LocalStorage) Replace(oldURL string, filename string, src io.Reader) (string, error) {
	if oldURL != "" {
		oldPath := strings.TrimPrefix(oldURL, "/")
		archived := filepath.Join(s.baseDir, archiveDir, filepath.Base(oldPath))
		// A missing old file is not fatal: the replacement still happens.
		_ = os.Rename(oldPath, archived)
	}

	return s.Save(filename, src)
}

func uniqueName(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
}
