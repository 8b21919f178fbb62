package celestial

import (
	"context"

	"anoa.com/spacemanagement/internal/modules/celestial/dto"
	"anoa.com/spacemanagement/internal/modules/celestial/repository"
	commonDto "anoa.com/spacemanagement/pkg/dto"
)

type CelestialService interface {
	GetAll(ctx context.Context, filter dto.ListFilter) ([]commonDto.CelestialResponse, error)
}

type celestialService struct {
	repo repository.CelestialRepository
}

func NewCelestialService(repo repository.CelestialRepository) CelestialService {
	return &celestialService{repo: repo}
}

func (s *celestialService) GetAll(ctx context.Context, filter dto.ListFilter) ([]commonDto.CelestialResponse, error) {
	objs, err := s.repo.FindAll(ctx, filter.Type)
	if err != nil {
		return nil, err
	}

	res := make([]commonDto.CelestialResponse, 0, len(objs))
	for i := range objs {
		res = append(res, commonDto.NewCelestialResponse(&objs[i].CelestialBase))
	}
	return res, nil
}
