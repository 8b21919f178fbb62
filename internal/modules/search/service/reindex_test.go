package search

import (
	"context"
	"testing"

	"anoa.com/spacemanagement/internal/entity"
	celestialRepo "anoa.com/spacemanagement/internal/modules/celestial/repository"
	"anoa.com/spacemanagement/internal/modules/search/dto"
	"anoa.com/spacemanagement/internal/testutil"
	"anoa.com/spacemanagement/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIndexer struct {
	indexed []*entity.CelestialBase
	removed []uint
}

func (r *recordingIndexer) Index(objs ...*entity.CelestialBase) error {
	r.indexed = append(r.indexed, objs...)
	return nil
}

func (r *recordingIndexer) Remove(id uint) error {
	r.removed = append(r.removed, id)
	return nil
}

func TestReindexJobIndexesEverySubtype(t *testing.T) {
	db := testutil.CatalogDB(t)
	ctx := context.Background()

	require.NoError(t, celestialRepo.NewStore[entity.Alien](db).Create(ctx,
		&entity.Alien{CelestialBase: entity.CelestialBase{Name: "Zorg"}, OriginPlanet: "Mars"}))
	require.NoError(t, celestialRepo.NewStore[entity.Comet](db).Create(ctx,
		&entity.Comet{CelestialBase: entity.CelestialBase{Name: "Halley"}, TailColor: "blue"}))

	indexer := &recordingIndexer{}
	job := NewReindexJob(celestialRepo.NewCelestialRepository(db), indexer, "@every 6h")

	require.NoError(t, job.Execute(ctx))
	require.Len(t, indexer.indexed, 2)
	assert.Equal(t, entity.TypeAlien, indexer.indexed[0].CelestialObjectType)
	assert.Equal(t, entity.TypeComet, indexer.indexed[1].CelestialObjectType)
	assert.Equal(t, "@every 6h", job.Schedule())
}

func TestDisabledSearchService(t *testing.T) {
	svc := NewDisabledSearchService()
	assert.NoError(t, svc.Index(&entity.CelestialBase{ID: 1}))
	assert.NoError(t, svc.Remove(1))

	_, err := svc.Search(dto.SearchQuery{Q: "mars"})
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}
