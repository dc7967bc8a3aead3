package media

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore is the slice of the attachment store the upload path needs.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	PublicURL(key string) string
}

type Service interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (*UploadResponse, error)
}

type service struct {
	blobs BlobStore
}

func NewService(blobs BlobStore) Service {
	return &service{blobs: blobs}
}

// Upload stores the bytes under a fresh uuid-based key that keeps the
// declared file's extension. The blob is not tied to any post here; that
// happens when a create/update request carries the returned reference.
func (s *service) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (*UploadResponse, error) {
	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if err := s.blobs.Put(ctx, key, contentType, r, size); err != nil {
		return nil, err
	}
	return &UploadResponse{
		ImageURL: s.blobs.PublicURL(key),
		ImageKey: key,
	}, nil
}
