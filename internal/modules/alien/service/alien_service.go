package alien

import (
	"context"
	"time"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/internal/modules/alien/dto"
	"anoa.com/spacemanagement/internal/modules/alien/repository"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	notification "anoa.com/spacemanagement/internal/modules/notification/service"
	search "anoa.com/spacemanagement/internal/modules/search/service"
)

type AlienService interface {
	Create(ctx context.Context, req dto.AlienRequest, username string) (*dto.AlienResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AlienResponse, error)
	GetAll(ctx context.Context) ([]dto.AlienResponse, error)
	GetFriendly(ctx context.Context) ([]dto.AlienResponse, error)
	GetByOriginPlanet(ctx context.Context, originPlanet string) ([]dto.AlienResponse, error)
	Update(ctx context.Context, id uint, req dto.AlienRequest, username string) error
	Delete(ctx context.Context, id uint) error
}

type alienService struct {
	repo     repository.AlienRepository
	images   image.Resolver
	indexer  search.Indexer
	notifier notification.Notifier
	now      func() time.Time
}

func NewAlienService(repo repository.AlienRepository, images image.Resolver, indexer search.Indexer, notifier notification.Notifier) AlienService {
	return &alienService{
		repo:     repo,
		images:   images,
		indexer:  indexer,
		notifier: notifier,
		now:      time.Now,
	}
}

func apply(a *entity.Alien, req dto.AlienRequest) {
	req.ApplyTo(&a.CelestialBase)
	a.OriginPlanet = req.OriginPlanet
	a.IsFriendly = req.IsFriendly
}

// Create commits the alien first and then broadcasts it. A failed broadcast
// is returned but the alien stays.
func (s *alienService) Create(ctx context.Context, req dto.AlienRequest, username string) (*dto.AlienResponse, error) {
	img, err := s.images.DefaultImage(ctx, "alien")
	if err != nil {
		return nil, err
	}

	alien := &entity.Alien{}
	apply(alien, req)
	alien.SetImage(img)

	if err := s.repo.Create(ctx, alien); err != nil {
		return nil, err
	}
	search.Sync(ctx, s.indexer, &alien.CelestialBase)

	if _, err := s.notifier.Notify(ctx, alien.ID, createdMessage(alien, username, s.now())); err != nil {
		return nil, err
	}

	res := dto.NewAlienResponse(alien)
	return &res, nil
}

func (s *alienService) GetByID(ctx context.Context, id uint) (*dto.AlienResponse, error) {
	alien, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := dto.NewAlienResponse(alien)
	return &res, nil
}

func (s *alienService) GetAll(ctx context.Context) ([]dto.AlienResponse, error) {
	return toResponses(s.repo.FindAll(ctx))
}

func (s *alienService) GetFriendly(ctx context.Context) ([]dto.AlienResponse, error) {
	return toResponses(s.repo.FindFriendly(ctx))
}

func (s *alienService) GetByOriginPlanet(ctx context.Context, originPlanet string) ([]dto.AlienResponse, error) {
	return toResponses(s.repo.FindByOriginPlanet(ctx, originPlanet))
}

func (s *alienService) Update(ctx context.Context, id uint, req dto.AlienRequest, username string) error {
	alien, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	apply(alien, req)
	if err := s.repo.Update(ctx, alien); err != nil {
		return err
	}
	search.Sync(ctx, s.indexer, &alien.CelestialBase)

	_, err = s.notifier.Notify(ctx, alien.ID, updatedMessage(alien, username, s.now()))
	return err
}

// Delete announces the removal before doing it. When the broadcast fails the
// alien is kept, so its notification row still has a parent.
func (s *alienService) Delete(ctx context.Context, id uint) error {
	alien, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.notifier.Notify(ctx, alien.ID, deletedMessage(alien)); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	search.Forget(ctx, s.indexer, id)
	return nil
}

func toResponses(aliens []entity.Alien, err error) ([]dto.AlienResponse, error) {
	if err != nil {
		return nil, err
	}

	res := make([]dto.AlienResponse, 0, len(aliens))
	for i := range aliens {
		res = append(res, dto.NewAlienResponse(&aliens[i]))
	}
	return res, nil
}
