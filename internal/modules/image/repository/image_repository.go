package repository

import (
	"context"
	"errors"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/pkg/apperror"
	"gorm.io/gorm"
)

type ImageRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Image, error)
	FindAll(ctx context.Context) ([]entity.Image, error)
	Save(ctx context.Context, image *entity.Image) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) FindByName(ctx context.Context, name string) (*entity.Image, error) {
	var image entity.Image
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) FindAll(ctx context.Context) ([]entity.Image, error) {
	var images []entity.Image
	if err := r.db.WithContext(ctx).Order("name").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Save inserts image when it has no id and updates it otherwise.
func (r *imageRepository) Save(ctx context.Context, image *entity.Image) error {
	return r.db.WithContext(ctx).Save(image).Error
}
