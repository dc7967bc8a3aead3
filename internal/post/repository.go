package post

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, offset, limit int) ([]Post, error)
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id uint64) (*Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, offset, limit int) ([]Post, error) {
	posts := []Post{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repository) Create(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id uint64) (*Post, error) {
	var p Post
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Post) error {
	// Save writes all fields, so clearing image_url back to NULL works too.
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&Post{}, id).Error
}

func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&Post{}).Error
}
