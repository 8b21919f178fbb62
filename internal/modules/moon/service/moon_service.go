package moon

import (
	"context"
	"fmt"

	"anoa.com/spacemanagement/internal/entity"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	"anoa.com/spacemanagement/internal/modules/moon/dto"
	"anoa.com/spacemanagement/internal/modules/moon/repository"
	search "anoa.com/spacemanagement/internal/modules/search/service"
	"anoa.com/spacemanagement/pkg/apperror"
)

const defaultImage = "moon"

type MoonService interface {
	Create(ctx context.Context, req dto.MoonRequest) (*dto.MoonResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.MoonResponse, error)
	GetAll(ctx context.Context) ([]dto.MoonResponse, error)
	Update(ctx context.Context, id uint, req dto.MoonRequest) error
	Delete(ctx context.Context, id uint) error
}

type moonService struct {
	repo    repository.MoonRepository
	images  image.Resolver
	indexer search.Indexer
}

func NewMoonService(repo repository.MoonRepository, images image.Resolver, indexer search.Indexer) MoonService {
	return &moonService{repo: repo, images: images, indexer: indexer}
}

func (s *moonService) apply(ctx context.Context, m *entity.Moon, req dto.MoonRequest) error {
	exists, err := s.repo.PlanetExists(ctx, req.PlanetID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: planet %d not found", apperror.ErrInvalidInput, req.PlanetID)
	}

	img, err := s.images.DefaultImage(ctx, defaultImage)
	if err != nil {
		return err
	}

	req.ApplyTo(&m.CelestialBase)
	m.SetImage(img)
	m.PlanetID = req.PlanetID
	m.Planet = nil
	m.OrbitalPeriod = req.OrbitalPeriod
	m.DistanceFromPlanet = req.DistanceFromPlanet
	return nil
}

func (s *moonService) Create(ctx context.Context, req dto.MoonRequest) (*dto.MoonResponse, error) {
	moon := &entity.Moon{}
	if err := s.apply(ctx, moon, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, moon); err != nil {
		return nil, err
	}
	search.Sync(ctx, s.indexer, &moon.CelestialBase)

	res := dto.NewMoonResponse(moon)
	return &res, nil
}

func (s *moonService) GetByID(ctx context.Context, id uint) (*dto.MoonResponse, error) {
	moon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := dto.NewMoonResponse(moon)
	return &res, nil
}

func (s *moonService) GetAll(ctx context.Context) ([]dto.MoonResponse, error) {
	moons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.MoonResponse, 0, len(moons))
	for i := range moons {
		res = append(res, dto.NewMoonResponse(&moons[i]))
	}
	return res, nil
}

func (s *moonService) Update(ctx context.Context, id uint, req dto.MoonRequest) error {
	moon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.apply(ctx, moon, req); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, moon); err != nil {
		return err
	}
	search.Sync(ctx, s.indexer, &moon.CelestialBase)
	return nil
}

func (s *moonService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	search.Forget(ctx, s.indexer, id)
	return nil
}
