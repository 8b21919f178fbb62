package usernotification

import (
	"context"
	"encoding/json"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/internal/modules/usernotification/dto"
	"anoa.com/spacemanagement/internal/modules/usernotification/repository"
	"github.com/rs/zerolog/log"
)

type UserNotificationService interface {
	Broadcast(ctx context.Context, req dto.AddNotificationRequest) (int, error)
	GetByUserID(ctx context.Context, userID uint) ([]dto.UserNotificationResponse, error)
	Delete(ctx context.Context, id uint) error
}

type userNotificationService struct {
	repo      repository.UserNotificationRepository
	publisher Publisher
}

func NewUserNotificationService(repo repository.UserNotificationRepository, publisher Publisher) UserNotificationService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &userNotificationService{
		repo:      repo,
		publisher: publisher,
	}
}

// Broadcast copies the notification to every registered user, then pushes
// each copy to its owner's live channel. Publishing is best effort: the
// stored copies are the source of truth.
func (s *userNotificationService) Broadcast(ctx context.Context, req dto.AddNotificationRequest) (int, error) {
	copies, err := s.repo.FanOut(ctx, entity.UserNotification{
		AlienID:          req.AlienID,
		Message:          req.Message,
		NotificationDate: req.NotificationDate,
		Location:         req.Location,
	})
	if err != nil {
		return 0, err
	}

	for i := range copies {
		payload, err := json.Marshal(toResponse(&copies[i]))
		if err != nil {
			continue
		}
		if err := s.publisher.Publish(ctx, copies[i].UserID, payload); err != nil {
			log.Ctx(ctx).Warn().Err(err).Uint("user_id", copies[i].UserID).Msg("failed to publish notification")
		}
	}

	log.Ctx(ctx).Info().Uint("alien_id", req.AlienID).Int("recipients", len(copies)).Msg("notification broadcast")
	return len(copies), nil
}

func (s *userNotificationService) GetByUserID(ctx context.Context, userID uint) ([]dto.UserNotificationResponse, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]dto.UserNotificationResponse, len(notifications))
	for i := range notifications {
		res[i] = toResponse(&notifications[i])
	}
	return res, nil
}

func (s *userNotificationService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func toResponse(n *entity.UserNotification) dto.UserNotificationResponse {
	return dto.UserNotificationResponse{
		ID:               n.ID,
		AlienID:          n.AlienID,
		Message:          n.Message,
		NotificationDate: n.NotificationDate,
		Location:         n.Location,
	}
}
