package repository

import (
	"context"
	"strings"

	"anoa.com/spacemanagement/internal/entity"
	celestial "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"gorm.io/gorm"
)

type ConstellationRepository interface {
	Create(ctx context.Context, constellation *entity.Constellation) error
	FindByID(ctx context.Context, id uint) (*entity.Constellation, error)
	FindAll(ctx context.Context) ([]entity.Constellation, error)
	FindByMonth(ctx context.Context, month string) ([]entity.Constellation, error)
	Update(ctx context.Context, constellation *entity.Constellation) error
	Delete(ctx context.Context, id uint) error
}

type constellationRepository struct {
	store *celestial.Store[entity.Constellation, *entity.Constellation]
}

func NewConstellationRepository(db *gorm.DB) ConstellationRepository {
	return &constellationRepository{store: celestial.NewStore[entity.Constellation](db)}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *constellationRepository) Create(ctx context.Context, constellation *entity.Constellation) error {
	return r.store.Create(ctx, constellation)
}

func (r *constellationRepository) FindByID(ctx context.Context, id uint) (*entity.Constellation, error) {
	return r.store.FindByID(ctx, id, celestial.WithImage)
}

func (r *constellationRepository) FindAll(ctx context.Context) ([]entity.Constellation, error) {
	return r.store.FindAll(ctx, celestial.WithImage)
}

// FindByMonth matches month as a case-insensitive substring of the free-text
// viewing months. Anything that matches nothing yields an empty list.
func (r *constellationRepository) FindByMonth(ctx context.Context, month string) ([]entity.Constellation, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(month)) + "%"
	return r.store.FindAll(ctx, celestial.WithImage, func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(best_viewing_months) LIKE ? ESCAPE '\'`, pattern)
	})
}

func (r *constellationRepository) Update(ctx context.Context, constellation *entity.Constellation) error {
	return r.store.Update(ctx, constellation)
}

func (r *constellationRepository) Delete(ctx context.Context, id uint) error {
	return r.store.Delete(ctx, id)
}
