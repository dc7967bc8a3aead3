package post

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("post not found")

var cleanupFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "post_image_cleanup_failures_total",
	Help: "Best-effort image deletions that failed and were skipped.",
})

// BlobRemover deletes an object from the attachment bucket by key.
type BlobRemover interface {
	Remove(ctx context.Context, key string) error
}

type Service interface {
	List(ctx context.Context, offset, limit int) ([]Post, error)
	Create(ctx context.Context, in PostRequest) (*Post, error)
	Update(ctx context.Context, id uint64, in PostRequest) (*Post, error)
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) error
}

type service struct {
	repo  Repository
	blobs BlobRemover
}

func NewService(repo Repository, blobs BlobRemover) Service {
	return &service{repo: repo, blobs: blobs}
}

func (s *service) List(ctx context.Context, offset, limit int) ([]Post, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Create(ctx context.Context, in PostRequest) (*Post, error) {
	p := &Post{
		Title:             in.Title,
		Text:              in.Text,
		ImageURL:          in.ImageURL,
		ImageKey:          in.ImageKey,
		IncludeTimestamps: true,
		CreatedAt:         time.Now().UTC(),
	}
	if in.IncludeTimestamps != nil {
		p.IncludeTimestamps = *in.IncludeTimestamps
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, id uint64, in PostRequest) (*Post, error) {
	p, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	// The old image is cleaned up when the reference changes. Cleanup is
	// best-effort: the record update goes ahead whatever happens to the blob.
	if imageChanged(p.ImageURL, in.ImageURL) && p.ImageURL != nil {
		s.removeBlob(ctx, p)
	}

	p.Title = in.Title
	p.Text = in.Text
	p.ImageURL = in.ImageURL
	p.ImageKey = in.ImageKey
	if in.IncludeTimestamps != nil {
		p.IncludeTimestamps = *in.IncludeTimestamps
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id uint64) error {
	p, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}
	if p.ImageURL != nil {
		s.removeBlob(ctx, p)
	}
	return s.repo.Delete(ctx, id)
}

// DeleteAll removes every row. Attached blobs are left behind; there is no
// bulk cleanup pass.
func (s *service) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func (s *service) getExisting(ctx context.Context, id uint64) (*Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// removeBlob deletes the post's current image from the attachment store.
// Failures are logged and counted, never returned.
func (s *service) removeBlob(ctx context.Context, p *Post) {
	key := blobKey(p)
	if key == "" {
		return
	}
	if err := s.blobs.Remove(ctx, key); err != nil {
		cleanupFailures.Inc()
		log.Printf("post %d: image cleanup for %q failed: %v", p.ID, key, err)
	}
}

// blobKey prefers the stored object key; rows from before the image_key
// column fall back to the last path segment of the URL.
func blobKey(p *Post) string {
	if p.ImageKey != nil && *p.ImageKey != "" {
		return *p.ImageKey
	}
	if p.ImageURL == nil {
		return ""
	}
	u, err := url.Parse(*p.ImageURL)
	if err != nil {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	return segs[len(segs)-1]
}

func imageChanged(prev, next *string) bool {
	switch {
	case prev == nil && next == nil:
		return false
	case prev == nil || next == nil:
		return true
	default:
		return *prev != *next
	}
}
