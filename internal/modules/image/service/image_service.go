package image

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/internal/modules/image/dto"
	"anoa.com/spacemanagement/internal/modules/image/repository"
	"anoa.com/spacemanagement/pkg/apperror"
	"anoa.com/spacemanagement/pkg/storage"
	"github.com/rs/zerolog/log"
)

// Resolver finds the default image of a category by its name.
type Resolver interface {
	DefaultImage(ctx context.Context, name string) (*entity.Image, error)
}

type ImageService interface {
	Resolver
	GetAll(ctx context.Context) ([]dto.ImageResponse, error)
	Upload(ctx context.Context, req dto.UploadImageRequest) (*dto.ImageResponse, error)
}

type imageService struct {
	repo    repository.ImageRepository
	storage storage.ImageStorage
	folder  string
}

// NewImageService wires the image catalogue. fileStorage may be nil, in
// which case uploads are reported as unavailable.
func NewImageService(repo repository.ImageRepository, fileStorage storage.ImageStorage, folder string) ImageService {
	return &imageService{repo: repo, storage: fileStorage, folder: folder}
}

func (s *imageService) DefaultImage(ctx context.Context, name string) (*entity.Image, error) {
	img, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("%w (%s)", apperror.ErrDefaultImageNotFound, name)
		}
		return nil, err
	}
	return img, nil
}

func (s *imageService) GetAll(ctx context.Context) ([]dto.ImageResponse, error) {
	images, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ImageResponse, 0, len(images))
	for _, img := range images {
		res = append(res, toResponse(&img))
	}
	return res, nil
}

func (s *imageService) Upload(ctx context.Context, req dto.UploadImageRequest) (*dto.ImageResponse, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("image upload is not configured: %w", apperror.ErrUnavailable)
	}

	f, err := req.File.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read uploaded file", apperror.ErrBadRequest)
	}
	defer f.Close()

	url, err := s.storage.UploadImage(ctx, f, s.folder, req.File.Filename)
	if err != nil {
		return nil, err
	}

	img, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	var previous string
	if img == nil {
		img = &entity.Image{Name: req.Name}
	} else {
		previous = img.Path
	}
	img.Path = url

	if err := s.repo.Save(ctx, img); err != nil {
		return nil, err
	}

	// Seeded paths are static assets; only files we uploaded get cleaned up.
	if previous != "" && s.storage.Owns(previous) {
		if err := s.storage.DeleteImage(ctx, previous); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("url", previous).Msg("failed to delete replaced image")
		}
	}

	res := toResponse(img)
	return &res, nil
}

func toResponse(img *entity.Image) dto.ImageResponse {
	return dto.ImageResponse{ID: img.ID, Name: img.Name, Path: img.Path}
}
