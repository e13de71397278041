package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Create base directory if not exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}

	return &LocalStorage{basePath: abs}, nil
}

// resolve maps a document key to a path inside basePath.
func (s *LocalStorage) resolve(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("invalid document key: %q", key)
	}

	fullPath := filepath.Join(s.basePath, filepath.Clean("/"+key))

	// Ensure file is within basePath
	if !strings.HasPrefix(fullPath, s.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid document key: %s", key)
	}
	return fullPath, nil
}

func (s *LocalStorage) Load(ctx context.Context, key string) ([]byte, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", key, ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to read document %s: %w", key, err)
	}

	return data, nil
}

// Save writes to a unique temp file next to the target and renames it over
// the previous document, so readers never observe a half-written file.
func (s *LocalStorage) Save(ctx context.Context, key string, data []byte) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Create directory structure
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", fullPath, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		// Cleanup on error
		os.Remove(tmp)
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}

	if err := os.Rename(tmp, fullPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace document %s: %w", key, err)
	}

	return nil
}
