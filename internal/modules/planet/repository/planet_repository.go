package repository

import (
	"context"
	"fmt"

	"anoa.com/spacemanagement/internal/entity"
	celestial "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"anoa.com/spacemanagement/pkg/apperror"
	"gorm.io/gorm"
)

type PlanetRepository interface {
	Create(ctx context.Context, planet *entity.Planet) error
	FindByID(ctx context.Context, id uint) (*entity.Planet, error)
	FindAll(ctx context.Context) ([]entity.Planet, error)
	FindWithLife(ctx context.Context) ([]entity.Planet, error)
	FindWithRings(ctx context.Context) ([]entity.Planet, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, planet *entity.Planet) error
	Delete(ctx context.Context, id uint) error
}

type planetRepository struct {
	store *celestial.Store[entity.Planet, *entity.Planet]
}

func NewPlanetRepository(db *gorm.DB) PlanetRepository {
	return &planetRepository{store: celestial.NewStore[entity.Planet](db)}
}

// withMoons loads the image and the moons (with their images) of a planet.
func withMoons(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Image").
		Preload("Moons", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(celestial.OfType(entity.TypeMoon)).Order("id")
		}).
		Preload("Moons.Image")
}

func (r *planetRepository) Create(ctx context.Context, planet *entity.Planet) error {
	return r.store.Create(ctx, planet)
}

func (r *planetRepository) FindByID(ctx context.Context, id uint) (*entity.Planet, error) {
	return r.store.FindByID(ctx, id, withMoons)
}

func (r *planetRepository) FindAll(ctx context.Context) ([]entity.Planet, error) {
	return r.store.FindAll(ctx, withMoons)
}

func (r *planetRepository) FindWithLife(ctx context.Context) ([]entity.Planet, error) {
	return r.store.FindAll(ctx, withMoons, func(db *gorm.DB) *gorm.DB {
		return db.Where("supports_life = ?", true)
	})
}

func (r *planetRepository) FindWithRings(ctx context.Context) ([]entity.Planet, error) {
	return r.store.FindAll(ctx, withMoons, func(db *gorm.DB) *gorm.DB {
		return db.Where("has_rings = ?", true)
	})
}

func (r *planetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.store.Exists(ctx, id)
}

func (r *planetRepository) Update(ctx context.Context, planet *entity.Planet) error {
	return r.store.Update(ctx, planet)
}

// Delete refuses to remove a planet that still has moons. The check and the
// delete share a transaction; the foreign key enforces the same rule on
// engines that honour it.
func (r *planetRepository) Delete(ctx context.Context, id uint) error {
	return r.store.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := r.store.WithTx(tx)

		exists, err := store.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("planet %d: %w", id, apperror.ErrNotFound)
		}

		var moons int64
		if err := tx.Model(&entity.Moon{}).
			Scopes(celestial.OfType(entity.TypeMoon)).
			Where("planet_id = ?", id).
			Count(&moons).Error; err != nil {
			return err
		}
		if moons > 0 {
			return fmt.Errorf("planet %d still has %d moon(s): %w", id, moons, apperror.ErrConflict)
		}

		return store.Delete(ctx, id)
	})
}
