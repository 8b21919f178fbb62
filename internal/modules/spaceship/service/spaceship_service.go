package spaceship

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	search "anoa.com/spacemanagement/internal/modules/search/service"
	"anoa.com/spacemanagement/internal/modules/spaceship/dto"
	"anoa.com/spacemanagement/internal/modules/spaceship/repository"
)

type SpaceshipService interface {
	Create(ctx context.Context, req dto.SpaceshipRequest) (*dto.SpaceshipResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SpaceshipResponse, error)
	GetAll(ctx context.Context) ([]dto.SpaceshipResponse, error)
	Update(ctx context.Context, id uint, req dto.SpaceshipRequest) error
	Delete(ctx context.Context, id uint) error
}

type spaceshipService struct {
	repo    repository.SpaceshipRepository
	images  image.Resolver
	indexer search.Indexer
}

func NewSpaceshipService(repo repository.SpaceshipRepository, images image.Resolver, indexer search.Indexer) SpaceshipService {
	return &spaceshipService{repo: repo, images: images, indexer: indexer}
}

func (s *spaceshipService) Create(ctx context.Context, req dto.SpaceshipRequest) (*dto.SpaceshipResponse, error) {
	img, err := s.images.DefaultImage(ctx, "spaceship")
	if err != nil {
		return nil, err
	}

	ship := &entity.Spaceship{
		Mission:    req.Mission,
		LaunchDate: req.LaunchDate,
		ReturnDate: req.ReturnDate,
	}
	req.ApplyTo(&ship.CelestialBase)
	ship.SetImage(img)

	if err := s.repo.Create(ctx, ship); err != nil {
		return nil, err
	}
	search.Sync(ctx, s.indexer, &ship.CelestialBase)

	res := dto.NewSpaceshipResponse(ship)
	return &res, nil
}

func (s *spaceshipService) GetByID(ctx context.Context, id uint) (*dto.SpaceshipResponse, error) {
	ship, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := dto.NewSpaceshipResponse(ship)
	return &res, nil
}

func (s *spaceshipService) GetAll(ctx context.Context) ([]dto.SpaceshipResponse, error) {
	ships, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.SpaceshipResponse, 0, len(ships))
	for i := range ships {
		res = append(res, dto.NewSpaceshipResponse(&ships[i]))
	}
	return res, nil
}

func (s *spaceshipService) Update(ctx context.Context, id uint, req dto.SpaceshipRequest) error {
	ship, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	req.ApplyTo(&ship.CelestialBase)
	ship.Mission = req.Mission
	ship.LaunchDate = req.LaunchDate
	ship.ReturnDate = req.ReturnDate

	if err := s.repo.Update(ctx, ship); err != nil {
		return err
	}
	search.Sync(ctx, s.indexer, &ship.CelestialBase)
	return nil
}

func (s *spaceshipService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	search.Forget(ctx, s.indexer, id)
	return nil
}
