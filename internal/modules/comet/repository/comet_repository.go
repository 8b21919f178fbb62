package repository

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	celestial "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"gorm.io/gorm"
)

type CometRepository interface {
	Create(ctx context.Context, comet *entity.Comet) error
	FindByID(ctx context.Context, id uint) (*entity.Comet, error)
	FindAll(ctx context.Context) ([]entity.Comet, error)
	Update(ctx context.Context, comet *entity.Comet) error
	Delete(ctx context.Context, id uint) error
}

type cometRepository struct {
	store *celestial.Store[entity.Comet, *entity.Comet]
}

func NewCometRepository(db *gorm.DB) CometRepository {
	return &cometRepository{store: celestial.NewStore[entity.Comet](db)}
}

func (r *cometRepository) Create(ctx context.Context, comet *entity.Comet) error {
	return r.store.Create(ctx, comet)
}

func (r *cometRepository) FindByID(ctx context.Context, id uint) (*entity.Comet, error) {
	return r.store.FindByID(ctx, id, celestial.WithImage)
}

func (r *cometRepository) FindAll(ctx context.Context) ([]entity.Comet, error) {
	return r.store.FindAll(ctx, celestial.WithImage)
}

func (r *cometRepository) Update(ctx context.Context, comet *entity.Comet) error {
	return r.store.Update(ctx, comet)
}

func (r *cometRepository) Delete(ctx context.Context, id uint) error {
	return r.store.Delete(ctx, id)
}
