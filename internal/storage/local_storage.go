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

// LocalStorageService implements image storage on the local filesystem.
// Objects are keyed "<folder>/<uuid><ext>" and served back over the HTTP
// download route, mimicking a hosted image provider.
type LocalStorageService struct {
	baseURL    string // Server URL (e.g., "http://localhost:8080")
	uploadsDir string // Local directory for uploads (e.g., "./uploads")
}

// NewLocalStorageService creates a new local storage service
func NewLocalStorageService(baseURL, uploadsDir string) (*LocalStorageService, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorageService{
		baseURL:    baseURL,
		uploadsDir: uploadsDir,
	}, nil
}

func (s *LocalStorageService) Upload(ctx context.Context, folder, filename, contentType string, data io.Reader) (*UploadResult, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = extensionFor(contentType)
	}
	publicID := filepath.Join(folder, uuid.New().String()+ext)

	fullPath := filepath.Join(s.uploadsDir, publicID)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	// Forward slashes in the URL regardless of platform.
	urlKey := strings.ReplaceAll(publicID, string(os.PathSeparator), "/")
	return &UploadResult{
		SecureURL: fmt.Sprintf("%s/uploads/%s", s.baseURL, urlKey),
		PublicID:  urlKey,
	}, nil
}

func (s *LocalStorageService) Delete(ctx context.Context, publicID string) error {
	fullPath := filepath.Join(s.uploadsDir, filepath.FromSlash(publicID))
	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorageService) ReadFile(publicID string) (io.ReadCloser, error) {
	// Reject path traversal before touching the filesystem.
	clean := filepath.Clean(filepath.FromSlash(publicID))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid storage key: %s", publicID)
	}
	return os.Open(filepath.Join(s.uploadsDir, clean))
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
