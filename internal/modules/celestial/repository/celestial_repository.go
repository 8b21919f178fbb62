package repository

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	"gorm.io/gorm"
)

// CelestialRepository reads the shared table across subtypes.
type CelestialRepository interface {
	FindAll(ctx context.Context, objectType string) ([]entity.CelestialObject, error)
}

type celestialRepository struct {
	db *gorm.DB
}

func NewCelestialRepository(db *gorm.DB) CelestialRepository {
	return &celestialRepository{db: db}
}

// FindAll lists every object, or only those of objectType when it is set.
func (r *celestialRepository) FindAll(ctx context.Context, objectType string) ([]entity.CelestialObject, error) {
	var objs []entity.CelestialObject
	query := r.db.WithContext(ctx).Scopes(WithImage)

	if objectType != "" {
		query = query.Scopes(OfType(objectType))
	}

	if err := query.Order("id").Find(&objs).Error; err != nil {
		return nil, err
	}
	return objs, nil
}
