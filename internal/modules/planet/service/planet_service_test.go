package planet

import (
	"context"
	"testing"

	"anoa.com/spacemanagement/internal/entity"
	celestialRepo "anoa.com/spacemanagement/internal/modules/celestial/repository"
	imageRepo "anoa.com/spacemanagement/internal/modules/image/repository"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	"anoa.com/spacemanagement/internal/modules/planet/dto"
	"anoa.com/spacemanagement/internal/modules/planet/repository"
	search "anoa.com/spacemanagement/internal/modules/search/service"
	"anoa.com/spacemanagement/internal/testutil"
	"anoa.com/spacemanagement/pkg/apperror"
	commonDto "anoa.com/spacemanagement/pkg/dto"
	"anoa.com/spacemanagement/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (PlanetService, *gorm.DB) {
	t.Helper()
	db := testutil.CatalogDB(t)
	images := image.NewImageService(imageRepo.NewImageRepository(db), nil, "")
	svc := NewPlanetService(repository.NewPlanetRepository(db), images, search.NewDisabledSearchService(), normalize.DefaultTextureCatalog())
	return svc, db
}

func planetRequest(name, texture string) dto.PlanetRequest {
	return dto.PlanetRequest{
		CelestialFields: commonDto.CelestialFields{Name: name, XCoordinate: 1, YCoordinate: 2, ZCoordinate: 3},
		SurfaceTexture:  texture,
	}
}

func TestCreateNormalizesTexture(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	mars, err := svc.Create(ctx, planetRequest("Mars", "Mars"))
	require.NoError(t, err)
	assert.Equal(t, "mars", mars.SurfaceTexture)
	require.NotNil(t, mars.ImageURL)
	assert.Equal(t, "/textures/mars.jpg", *mars.ImageURL)
	assert.Equal(t, entity.TypePlanet, mars.Type)

	unknown, err := svc.Create(ctx, planetRequest("Qo'noS", "klingon"))
	require.NoError(t, err)
	assert.Equal(t, "terre", unknown.SurfaceTexture)
	assert.Equal(t, "/textures/earth.jpg", *unknown.ImageURL)

	stored, err := svc.GetByID(ctx, unknown.ID)
	require.NoError(t, err)
	assert.Equal(t, "terre", stored.SurfaceTexture)
}

func TestCreateFailsWithoutTextureImage(t *testing.T) {
	svc, db := newService(t)
	require.NoError(t, db.Where("name = ?", "mercury").Delete(&entity.Image{}).Error)

	_, err := svc.Create(context.Background(), planetRequest("Mercury", "mercure"))
	assert.ErrorIs(t, err, apperror.ErrDefaultImageNotFound)
}

func TestUpdateFollowsTexture(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, planetRequest("Blue", "neptune"))
	require.NoError(t, err)

	req := planetRequest("Blue Giant", "URANUS")
	req.ID = p.ID
	req.HasRings = true
	require.NoError(t, svc.Update(ctx, p.ID, req))
	require.NoError(t, svc.Update(ctx, p.ID, req))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Giant", got.Name)
	assert.Equal(t, "uranus", got.SurfaceTexture)
	assert.Equal(t, "/textures/uranus.jpg", *got.ImageURL)
	assert.True(t, got.HasRings)

	assert.ErrorIs(t, svc.Update(ctx, 4242, req), apperror.ErrNotFound)
}

func TestFilters(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	earth := planetRequest("Earth", "terre")
	earth.SupportsLife = true
	saturn := planetRequest("Saturn", "jupiter")
	saturn.HasRings = true

	_, err := svc.Create(ctx, earth)
	require.NoError(t, err)
	_, err = svc.Create(ctx, saturn)
	require.NoError(t, err)

	withLife, err := svc.GetWithLife(ctx)
	require.NoError(t, err)
	require.Len(t, withLife, 1)
	assert.Equal(t, "Earth", withLife[0].Name)

	withRings, err := svc.GetWithRings(ctx)
	require.NoError(t, err)
	require.Len(t, withRings, 1)
	assert.Equal(t, "Saturn", withRings[0].Name)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteIsRestrictedByMoons(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	earth, err := svc.Create(ctx, planetRequest("Earth", "terre"))
	require.NoError(t, err)

	moons := celestialRepo.NewStore[entity.Moon](db)
	luna := &entity.Moon{CelestialBase: entity.CelestialBase{Name: "Luna"}, PlanetID: earth.ID, OrbitalPeriod: 27.3}
	require.NoError(t, moons.Create(ctx, luna))

	withMoon, err := svc.GetByID(ctx, earth.ID)
	require.NoError(t, err)
	require.Len(t, withMoon.Moons, 1)
	assert.Equal(t, "Luna", withMoon.Moons[0].Name)

	err = svc.Delete(ctx, earth.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, 409, apperror.MapErrorToStatus(err))

	_, err = svc.GetByID(ctx, earth.ID)
	require.NoError(t, err)
	_, err = moons.FindByID(ctx, luna.ID)
	require.NoError(t, err)

	require.NoError(t, moons.Delete(ctx, luna.ID))
	require.NoError(t, svc.Delete(ctx, earth.ID))
	assert.ErrorIs(t, svc.Delete(ctx, earth.ID), apperror.ErrNotFound)
}

func TestGetByIDOfMoonIsNotFound(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	earth, err := svc.Create(ctx, planetRequest("Earth", "terre"))
	require.NoError(t, err)
	luna := &entity.Moon{CelestialBase: entity.CelestialBase{Name: "Luna"}, PlanetID: earth.ID}
	require.NoError(t, celestialRepo.NewStore[entity.Moon](db).Create(ctx, luna))

	_, err = svc.GetByID(ctx, luna.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
