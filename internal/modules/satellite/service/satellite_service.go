package satellite

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	"anoa.com/spacemanagement/internal/modules/satellite/dto"
	"anoa.com/spacemanagement/internal/modules/satellite/repository"
	search "anoa.com/spacemanagement/internal/modules/search/service"
)

const defaultImage = "satellite"

type SatelliteService interface {
	Create(ctx context.Context, req dto.SatelliteRequest) (*dto.SatelliteResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SatelliteResponse, error)
	GetAll(ctx context.Context) ([]dto.SatelliteResponse, error)
	Update(ctx context.Context, id uint, req dto.SatelliteRequest) error
	Delete(ctx context.Context, id uint) error
}

type satelliteService struct {
	repo    repository.SatelliteRepository
	images  image.Resolver
	indexer search.Indexer
}

func NewSatelliteService(repo repository.SatelliteRepository, images image.Resolver, indexer search.Indexer) SatelliteService {
	return &satelliteService{repo: repo, images: images, indexer: indexer}
}

func apply(s *entity.Satellite, req dto.SatelliteRequest) {
	req.ApplyTo(&s.CelestialBase)
	s.OrbitType = req.OrbitType
	s.LaunchDate = req.LaunchDate
	s.Function = req.Function
}

func (s *satelliteService) Create(ctx context.Context, req dto.SatelliteRequest) (*dto.SatelliteResponse, error) {
	img, err := s.images.DefaultImage(ctx, defaultImage)
	if err != nil {
		return nil, err
	}

	satellite := &entity.Satellite{}
	apply(satellite, req)
	satellite.SetImage(img)

	if err := s.repo.Create(ctx, satellite); err != nil {
		return nil, err
	}
	search.Sync(ctx, s.indexer, &satellite.CelestialBase)

	res := dto.NewSatelliteResponse(satellite)
	return &res, nil
}

func (s *satelliteService) GetByID(ctx context.Context, id uint) (*dto.SatelliteResponse, error) {
	satellite, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := dto.NewSatelliteResponse(satellite)
	return &res, nil
}

func (s *satelliteService) GetAll(ctx context.Context) ([]dto.SatelliteResponse, error) {
	satellites, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.SatelliteResponse, 0, len(satellites))
	for i := range satellites {
		res = append(res, dto.NewSatelliteResponse(&satellites[i]))
	}
	return res, nil
}

// Update keeps the current image.
func (s *satelliteService) Update(ctx context.Context, id uint, req dto.SatelliteRequest) error {
	satellite, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	apply(satellite, req)
	if err := s.repo.Update(ctx, satellite); err != nil {
		return err
	}
	search.Sync(ctx, s.indexer, &satellite.CelestialBase)
	return nil
}

func (s *satelliteService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	search.Forget(ctx, s.indexer, id)
	return nil
}
