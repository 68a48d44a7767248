package storage

import (
	"context"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and
	// returns its permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a public URL for a stored image.
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}
