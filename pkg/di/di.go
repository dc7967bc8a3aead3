package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/martinvojtus/mv-backend/configs"
	"github.com/martinvojtus/mv-backend/internal/media"
	"github.com/martinvojtus/mv-backend/internal/migrate"
	"github.com/martinvojtus/mv-backend/internal/post"
	"github.com/martinvojtus/mv-backend/internal/shared/db"
	"github.com/martinvojtus/mv-backend/internal/storage/s3"
)

// Container holds every process-wide dependency, built once at startup and
// passed down explicitly. Nothing here lives in package-level globals.
type Container struct {
	DB           *gorm.DB
	Blobs        *s3.Storage
	PostService  post.Service
	MediaService media.Service
}

func BuildContainer(ctx context.Context, cfg *configs.Config) (*Container, error) {
	store, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := migrate.AutoMigrateAll(store); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	blobs, err := s3.New(s3.Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("s3: %w", err)
	}
	if err := blobs.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("s3 ensure bucket: %w", err)
	}

	postRepo := post.NewRepository(store.Base)

	return &Container{
		DB:           store.Base,
		Blobs:        blobs,
		PostService:  post.NewService(postRepo, blobs),
		MediaService: media.NewService(blobs),
	}, nil
}
