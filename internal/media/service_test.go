package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeBlobStore struct {
	puts map[string]string // key -> content type
	err  error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{puts: map[string]string{}}
}

func (f *fakeBlobStore) Put(_ context.Context, key, contentType string, r io.Reader, _ int64) error {
	if f.err != nil {
		return f.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return err
	}
	f.puts[key] = contentType
	return nil
}

func (f *fakeBlobStore) PublicURL(key string) string {
	return "http://cdn/blog-images/" + key
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a uuid key keeping the extension", func(t *testing.T) {
		blobs := newFakeBlobStore()
		svc := NewService(blobs)

		out, err := svc.Upload(ctx, "Photo.PNG", "image/png", strings.NewReader("bytes"), 5)
		if err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if !strings.HasSuffix(out.ImageKey, ".png") {
			t.Errorf("key %q does not keep the extension", out.ImageKey)
		}
		if _, err := uuid.Parse(strings.TrimSuffix(out.ImageKey, ".png")); err != nil {
			t.Errorf("key %q is not uuid-based: %v", out.ImageKey, err)
		}
		if ct := blobs.puts[out.ImageKey]; ct != "image/png" {
			t.Errorf("stored content type = %q, want image/png", ct)
		}
	})

	t.Run("returns the public url for the key", func(t *testing.T) {
		svc := NewService(newFakeBlobStore())
		out, err := svc.Upload(ctx, "a.jpg", "image/jpeg", strings.NewReader("x"), 1)
		if err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if out.ImageURL != "http://cdn/blog-images/"+out.ImageKey {
			t.Errorf("image_url = %q, want it derived from the key", out.ImageURL)
		}
	})

	t.Run("two uploads of the same filename never collide", func(t *testing.T) {
		svc := NewService(newFakeBlobStore())
		a, _ := svc.Upload(ctx, "same.gif", "image/gif", strings.NewReader("x"), 1)
		b, _ := svc.Upload(ctx, "same.gif", "image/gif", strings.NewReader("x"), 1)
		if a.ImageKey == b.ImageKey {
			t.Errorf("both uploads got key %q", a.ImageKey)
		}
	})

	t.Run("storage failure propagates and stores nothing", func(t *testing.T) {
		blobs := newFakeBlobStore()
		blobs.err = errors.New("storage down")
		svc := NewService(blobs)

		if _, err := svc.Upload(ctx, "a.png", "image/png", strings.NewReader("x"), 1); err == nil {
			t.Fatal("expected an error")
		}
		if len(blobs.puts) != 0 {
			t.Errorf("nothing should be stored, got %v", blobs.puts)
		}
	})
}
