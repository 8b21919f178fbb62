package repository

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	celestial "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"gorm.io/gorm"
)

type MoonRepository interface {
	Create(ctx context.Context, moon *entity.Moon) error
	FindByID(ctx context.Context, id uint) (*entity.Moon, error)
	FindAll(ctx context.Context) ([]entity.Moon, error)
	PlanetExists(ctx context.Context, planetID uint) (bool, error)
	Update(ctx context.Context, moon *entity.Moon) error
	Delete(ctx context.Context, id uint) error
}

type moonRepository struct {
	store   *celestial.Store[entity.Moon, *entity.Moon]
	planets *celestial.Store[entity.Planet, *entity.Planet]
}

func NewMoonRepository(db *gorm.DB) MoonRepository {
	return &moonRepository{
		store:   celestial.NewStore[entity.Moon](db),
		planets: celestial.NewStore[entity.Planet](db),
	}
}

func withPlanet(db *gorm.DB) *gorm.DB {
	return db.Preload("Image").Preload("Planet")
}

func (r *moonRepository) Create(ctx context.Context, moon *entity.Moon) error {
	return r.store.Create(ctx, moon)
}

func (r *moonRepository) FindByID(ctx context.Context, id uint) (*entity.Moon, error) {
	return r.store.FindByID(ctx, id, withPlanet)
}

func (r *moonRepository) FindAll(ctx context.Context) ([]entity.Moon, error) {
	return r.store.FindAll(ctx, withPlanet)
}

// PlanetExists only accepts ids of planet rows.
func (r *moonRepository) PlanetExists(ctx context.Context, planetID uint) (bool, error) {
	return r.planets.Exists(ctx, planetID)
}

func (r *moonRepository) Update(ctx context.Context, moon *entity.Moon) error {
	return r.store.Update(ctx, moon)
}

func (r *moonRepository) Delete(ctx context.Context, id uint) error {
	return r.store.Delete(ctx, id)
}
