package repository

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	celestial "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"gorm.io/gorm"
)

type SatelliteRepository interface {
	Create(ctx context.Context, satellite *entity.Satellite) error
	FindByID(ctx context.Context, id uint) (*entity.Satellite, error)
	FindAll(ctx context.Context) ([]entity.Satellite, error)
	Update(ctx context.Context, satellite *entity.Satellite) error
	Delete(ctx context.Context, id uint) error
}

type satelliteRepository struct {
	store *celestial.Store[entity.Satellite, *entity.Satellite]
}

func NewSatelliteRepository(db *gorm.DB) SatelliteRepository {
	return &satelliteRepository{store: celestial.NewStore[entity.Satellite](db)}
}

func (r *satelliteRepository) Create(ctx context.Context, satellite *entity.Satellite) error {
	return r.store.Create(ctx, satellite)
}

func (r *satelliteRepository) FindByID(ctx context.Context, id uint) (*entity.Satellite, error) {
	return r.store.FindByID(ctx, id, celestial.WithImage)
}

func (r *satelliteRepository) FindAll(ctx context.Context) ([]entity.Satellite, error) {
	return r.store.FindAll(ctx, celestial.WithImage)
}

func (r *satelliteRepository) Update(ctx context.Context, satellite *entity.Satellite) error {
	return r.store.Update(ctx, satellite)
}

func (r *satelliteRepository) Delete(ctx context.Context, id uint) error {
	return r.store.Delete(ctx, id)
}
