package comet

import (
	"context"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/internal/modules/comet/dto"
	"anoa.com/spacemanagement/internal/modules/comet/repository"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	search "anoa.com/spacemanagement/internal/modules/search/service"
	"anoa.com/spacemanagement/pkg/normalize"
)

type CometService interface {
	Create(ctx context.Context, req dto.CometRequest) (*dto.CometResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CometResponse, error)
	GetAll(ctx context.Context) ([]dto.CometResponse, error)
	Update(ctx context.Context, id uint, req dto.CometRequest) error
	Delete(ctx context.Context, id uint) error
}

type cometService struct {
	repo    repository.CometRepository
	images  image.Resolver
	indexer search.Indexer
	tails   normalize.TailColorPolicy
}

func NewCometService(repo repository.CometRepository, images image.Resolver, indexer search.Indexer, tails normalize.TailColorPolicy) CometService {
	return &cometService{repo: repo, images: images, indexer: indexer, tails: tails}
}

// apply stores the normalized tail colour and the image that goes with it.
func (s *cometService) apply(ctx context.Context, c *entity.Comet, req dto.CometRequest) error {
	color, imageName := s.tails.Normalize(req.TailColor)

	img, err := s.images.DefaultImage(ctx, imageName)
	if err != nil {
		return err
	}

	req.ApplyTo(&c.CelestialBase)
	c.SetImage(img)
	c.NextAppearance = req.NextAppearance
	c.TailColor = color
	return nil
}

func (s *cometService) Create(ctx context.Context, req dto.CometRequest) (*dto.CometResponse, error) {
	comet := &entity.Comet{}
	if err := s.apply(ctx, comet, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, comet); err != nil {
		return nil, err
	}
	search.Sync(ctx, s.indexer, &comet.CelestialBase)

	res := dto.NewCometResponse(comet)
	return &res, nil
}

func (s *cometService) GetByID(ctx context.Context, id uint) (*dto.CometResponse, error) {
	comet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := dto.NewCometResponse(comet)
	return &res, nil
}

func (s *cometService) GetAll(ctx context.Context) ([]dto.CometResponse, error) {
	comets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.CometResponse, 0, len(comets))
	for i := range comets {
		res = append(res, dto.NewCometResponse(&comets[i]))
	}
	return res, nil
}

func (s *cometService) Update(ctx context.Context, id uint, req dto.CometRequest) error {
	comet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.apply(ctx, comet, req); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, comet); err != nil {
		return err
	}
	search.Sync(ctx, s.indexer, &comet.CelestialBase)
	return nil
}

func (s *cometService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	search.Forget(ctx, s.indexer, id)
	return nil
}
