package planet

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	"anoa.com/spacemanagement/internal/modules/planet/dto"
	"anoa.com/spacemanagement/internal/modules/planet/repository"
	search "anoa.com/spacemanagement/internal/modules/search/service"
	"anoa.com/spacemanagement/pkg/normalize"
)

type PlanetService interface {
	Create(ctx context.Context, req dto.PlanetRequest) (*dto.PlanetResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PlanetResponse, error)
	GetAll(ctx context.Context) ([]dto.PlanetResponse, error)
	GetWithLife(ctx context.Context) ([]dto.PlanetResponse, error)
	GetWithRings(ctx context.Context) ([]dto.PlanetResponse, error)
	Update(ctx context.Context, id uint, req dto.PlanetRequest) error
	Delete(ctx context.Context, id uint) error
}

type planetService struct {
	repo     repository.PlanetRepository
	images   image.Resolver
	indexer  search.Indexer
	textures normalize.TextureCatalog
}

func NewPlanetService(repo repository.PlanetRepository, images image.Resolver, indexer search.Indexer, textures normalize.TextureCatalog) PlanetService {
	return &planetService{
		repo:     repo,
		images:   images,
		indexer:  indexer,
		textures: textures,
	}
}

// apply copies req onto p. Unknown textures fall back to the catalogue
// default, and the image always follows the texture.
func (s *planetService) apply(ctx context.Context, p *entity.Planet, req dto.PlanetRequest) error {
	texture, imageName := s.textures.Normalize(req.SurfaceTexture)

	img, err := s.images.DefaultImage(ctx, imageName)
	if err != nil {
		return err
	}

	req.ApplyTo(&p.CelestialBase)
	p.SetImage(img)
	p.HasRings = req.HasRings
	p.SupportsLife = req.SupportsLife
	p.Diameter = req.Diameter
	p.Mass = req.Mass
	p.DistanceFromSun = req.DistanceFromSun
	p.SurfaceTexture = texture
	return nil
}

func (s *planetService) Create(ctx context.Context, req dto.PlanetRequest) (*dto.PlanetResponse, error) {
	planet := &entity.Planet{}
	if err := s.apply(ctx, planet, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, planet); err != nil {
		return nil, err
	}
	search.Sync(ctx, s.indexer, &planet.CelestialBase)

	res := dto.NewPlanetResponse(planet)
	return &res, nil
}

func (s *planetService) GetByID(ctx context.Context, id uint) (*dto.PlanetResponse, error) {
	planet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := dto.NewPlanetResponse(planet)
	return &res, nil
}

func (s *planetService) GetAll(ctx context.Context) ([]dto.PlanetResponse, error) {
	return toResponses(s.repo.FindAll(ctx))
}

func (s *planetService) GetWithLife(ctx context.Context) ([]dto.PlanetResponse, error) {
	return toResponses(s.repo.FindWithLife(ctx))
}

func (s *planetService) GetWithRings(ctx context.Context) ([]dto.PlanetResponse, error) {
	return toResponses(s.repo.FindWithRings(ctx))
}

func (s *planetService) Update(ctx context.Context, id uint, req dto.PlanetRequest) error {
	planet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.apply(ctx, planet, req); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, planet); err != nil {
		return err
	}
	search.Sync(ctx, s.indexer, &planet.CelestialBase)
	return nil
}

func (s *planetService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	search.Forget(ctx, s.indexer, id)
	return nil
}

func toResponses(planets []entity.Planet, err error) ([]dto.PlanetResponse, error) {
	if err != nil {
		return nil, err
	}

	res := make([]dto.PlanetResponse, 0, len(planets))
	for i := range planets {
		res = append(res, dto.NewPlanetResponse(&planets[i]))
	}
	return res, nil
}
