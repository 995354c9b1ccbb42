package storage

import (
	"context"
	"io"
)

// UploadResult is what the image host returns for a stored object:
// a publicly reachable URL and an opaque id usable for later deletion.
type UploadResult struct {
	SecureURL string
	PublicID  string
}

// StorageInterface defines the interface for image storage backends.
// The local-disk implementation stands in for a hosted image service.
type StorageInterface interface {
	// Upload stores the byte stream under folder and returns its public URL
	// and an opaque id.
	Upload(ctx context.Context, folder, filename, contentType string, data io.Reader) (*UploadResult, error)

	// Delete removes a previously uploaded object by its opaque id.
	Delete(ctx context.Context, publicID string) error

	// ReadFile opens a stored object for reading. Used by the HTTP
	// download route of the local backend.
	ReadFile(publicID string) (io.ReadCloser, error)
}
