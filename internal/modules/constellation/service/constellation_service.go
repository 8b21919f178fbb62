package constellation

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/internal/modules/constellation/dto"
	"anoa.com/spacemanagement/internal/modules/constellation/repository"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	search "anoa.com/spacemanagement/internal/modules/search/service"
)

type ConstellationService interface {
	Create(ctx context.Context, req dto.ConstellationRequest) (*dto.ConstellationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ConstellationResponse, error)
	GetAll(ctx context.Context) ([]dto.ConstellationResponse, error)
	GetByMonth(ctx context.Context, month string) ([]dto.ConstellationResponse, error)
	Update(ctx context.Context, id uint, req dto.ConstellationRequest) error
	Delete(ctx context.Context, id uint) error
}

type constellationService struct {
	repo    repository.ConstellationRepository
	images  image.Resolver
	indexer search.Indexer
}

func NewConstellationService(repo repository.ConstellationRepository, images image.Resolver, indexer search.Indexer) ConstellationService {
	return &constellationService{repo: repo, images: images, indexer: indexer}
}

func (s *constellationService) Create(ctx context.Context, req dto.ConstellationRequest) (*dto.ConstellationResponse, error) {
	img, err := s.images.DefaultImage(ctx, "constellation")
	if err != nil {
		return nil, err
	}

	c := &entity.Constellation{
		MainStars:         req.MainStars,
		BestViewingMonths: req.BestViewingMonths,
	}
	req.ApplyTo(&c.CelestialBase)
	c.SetImage(img)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	search.Sync(ctx, s.indexer, &c.CelestialBase)

	res := dto.NewConstellationResponse(c)
	return &res, nil
}

func (s *constellationService) GetByID(ctx context.Context, id uint) (*dto.ConstellationResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := dto.NewConstellationResponse(c)
	return &res, nil
}

func (s *constellationService) GetAll(ctx context.Context) ([]dto.ConstellationResponse, error) {
	return toResponses(s.repo.FindAll(ctx))
}

func (s *constellationService) GetByMonth(ctx context.Context, month string) ([]dto.ConstellationResponse, error) {
	return toResponses(s.repo.FindByMonth(ctx, month))
}

func (s *constellationService) Update(ctx context.Context, id uint, req dto.ConstellationRequest) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(&c.CelestialBase)
	c.MainStars = req.MainStars
	c.BestViewingMonths = req.BestViewingMonths

	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}
	search.Sync(ctx, s.indexer, &c.CelestialBase)
	return nil
}

func (s *constellationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	search.Forget(ctx, s.indexer, id)
	return nil
}

func toResponses(constellations []entity.Constellation, err error) ([]dto.ConstellationResponse, error) {
	if err != nil {
		return nil, err
	}

	res := make([]dto.ConstellationResponse, 0, len(constellations))
	for i := range constellations {
		res = append(res, dto.NewConstellationResponse(&constellations[i]))
	}
	return res, nil
}
