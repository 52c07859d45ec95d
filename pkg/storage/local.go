package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage writes uploads under a base directory. Photo objects follow
// the "{animalID}/photo-{uuid}{ext}" convention so per-animal cleanup stays a
// directory walk.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// SavePhoto stores the content and returns the object path relative to the
// base directory.
func (s *LocalStorage) SavePhoto(animalId uuid.UUID, originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	objectPath := fmt.Sprintf("%s/photo-%s%s", animalId, uuid.NewString(), ext)

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create animal dir: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	return objectPath, nil
}

// Delete removes a stored object. Missing files are not an error; photo
// cleanup is best effort.
func (s *LocalStorage) Delete(objectPath string) error {
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(objectPath))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
