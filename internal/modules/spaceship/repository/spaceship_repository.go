package repository

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	celestial "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"gorm.io/gorm"
)

type SpaceshipRepository interface {
	Create(ctx context.Context, spaceship *entity.Spaceship) error
	FindByID(ctx context.Context, id uint) (*entity.Spaceship, error)
	FindAll(ctx context.Context) ([]entity.Spaceship, error)
	Update(ctx context.Context, spaceship *entity.Spaceship) error
	Delete(ctx context.Context, id uint) error
}

type spaceshipRepository struct {
	store *celestial.Store[entity.Spaceship, *entity.Spaceship]
}

func NewSpaceshipRepository(db *gorm.DB) SpaceshipRepository {
	return &spaceshipRepository{store: celestial.NewStore[entity.Spaceship](db)}
}

func (r *spaceshipRepository) Create(ctx context.Context, spaceship *entity.Spaceship) error {
	return r.store.Create(ctx, spaceship)
}

func (r *spaceshipRepository) FindByID(ctx context.Context, id uint) (*entity.Spaceship, error) {
	return r.store.FindByID(ctx, id, celestial.WithImage)
}

func (r *spaceshipRepository) FindAll(ctx context.Context) ([]entity.Spaceship, error) {
	return r.store.FindAll(ctx, celestial.WithImage)
}

func (r *spaceshipRepository) Update(ctx context.Context, spaceship *entity.Spaceship) error {
	return r.store.Update(ctx, spaceship)
}

func (r *spaceshipRepository) Delete(ctx context.Context, id uint) error {
	return r.store.Delete(ctx, id)
}
