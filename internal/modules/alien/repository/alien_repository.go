package repository

import (
	"context"
	"fmt"

	"anoa.com/spacemanagement/internal/entity"
	celestial "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"anoa.com/spacemanagement/pkg/apperror"
	"gorm.io/gorm"
)

type AlienRepository interface {
	Create(ctx context.Context, alien *entity.Alien) error
	FindByID(ctx context.Context, id uint) (*entity.Alien, error)
	FindAll(ctx context.Context) ([]entity.Alien, error)
	FindFriendly(ctx context.Context) ([]entity.Alien, error)
	FindByOriginPlanet(ctx context.Context, originPlanet string) ([]entity.Alien, error)
	Update(ctx context.Context, alien *entity.Alien) error
	Delete(ctx context.Context, id uint) error
}

type alienRepository struct {
	store *celestial.Store[entity.Alien, *entity.Alien]
}

func NewAlienRepository(db *gorm.DB) AlienRepository {
	return &alienRepository{store: celestial.NewStore[entity.Alien](db)}
}

func (r *alienRepository) Create(ctx context.Context, alien *entity.Alien) error {
	return r.store.Create(ctx, alien)
}

func (r *alienRepository) FindByID(ctx context.Context, id uint) (*entity.Alien, error) {
	return r.store.FindByID(ctx, id, celestial.WithImage)
}

func (r *alienRepository) FindAll(ctx context.Context) ([]entity.Alien, error) {
	return r.store.FindAll(ctx, celestial.WithImage)
}

func (r *alienRepository) FindFriendly(ctx context.Context) ([]entity.Alien, error) {
	return r.store.FindAll(ctx, celestial.WithImage, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_friendly = ?", true)
	})
}

func (r *alienRepository) FindByOriginPlanet(ctx context.Context, originPlanet string) ([]entity.Alien, error) {
	return r.store.FindAll(ctx, celestial.WithImage, func(db *gorm.DB) *gorm.DB {
		return db.Where("origin_planet = ?", originPlanet)
	})
}

func (r *alienRepository) Update(ctx context.Context, alien *entity.Alien) error {
	return r.store.Update(ctx, alien)
}

// Delete removes the alien together with its notifications.
func (r *alienRepository) Delete(ctx context.Context, id uint) error {
	return r.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := r.store.WithTx(tx)

		exists, err := store.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("alien %d: %w", id, apperror.ErrNotFound)
		}

		if err := tx.Where("alien_id = ?", id).Delete(&entity.Notification{}).Error; err != nil {
			return err
		}
		return store.Delete(ctx, id)
	})
}
