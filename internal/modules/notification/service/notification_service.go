package notification

import (
	"context"
	"fmt"
	"time"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/internal/modules/notification/dto"
	"anoa.com/spacemanagement/internal/modules/notification/repository"
	"anoa.com/spacemanagement/pkg/apperror"
	"github.com/rs/zerolog/log"
)

// Notifier records an alien event and broadcasts it to every user.
type Notifier interface {
	Notify(ctx context.Context, alienID uint, message string) (*entity.Notification, error)
}

type NotificationService interface {
	Notifier
	Create(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.NotificationResponse, error)
	GetByAlienID(ctx context.Context, alienID uint) ([]dto.NotificationResponse, error)
}

type notificationService struct {
	repo  repository.NotificationRepository
	relay Relay
	now   func() time.Time
}

func NewNotificationService(repo repository.NotificationRepository, relay Relay) NotificationService {
	return &notificationService{
		repo:  repo,
		relay: relay,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Notify persists the notification, then relays it synchronously. The local
// row is kept whatever the relay outcome; its delivery status records it.
// A relay failure is returned so the caller can surface it, but nothing the
// caller already committed is undone.
func (s *notificationService) Notify(ctx context.Context, alienID uint, message string) (*entity.Notification, error) {
	n := &entity.Notification{
		AlienID:          alienID,
		Message:          message,
		NotificationDate: s.now(),
		Location:         entity.UnknownLocation,
		DeliveryStatus:   entity.DeliveryPersisted,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	relayErr := s.relay.Relay(ctx, dto.RelayPayload{
		AlienID:          n.AlienID,
		Message:          n.Message,
		NotificationDate: n.NotificationDate,
		Location:         n.Location,
	})

	status := entity.DeliveryRelayed
	if relayErr != nil {
		status = entity.DeliveryRelayFailed
	}
	if err := s.repo.UpdateStatus(ctx, n.ID, status); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint("notification_id", n.ID).Str("status", status).Msg("failed to record delivery status")
	} else {
		n.DeliveryStatus = status
	}

	return n, relayErr
}

// Create records a notification locally without relaying it.
func (s *notificationService) Create(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	exists, err := s.repo.AlienExists(ctx, req.AlienID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("alien %d: %w", req.AlienID, apperror.ErrNotFound)
	}

	n := &entity.Notification{
		AlienID:          req.AlienID,
		Message:          req.Message,
		NotificationDate: s.now(),
		Location:         req.Location,
		DeliveryStatus:   entity.DeliveryPersisted,
	}
	if req.NotificationDate != nil {
		n.NotificationDate = req.NotificationDate.UTC()
	}
	if n.Location == "" {
		n.Location = entity.UnknownLocation
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	res := toResponse(n)
	return &res, nil
}

func (s *notificationService) GetByID(ctx context.Context, id uint) (*dto.NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := toResponse(n)
	return &res, nil
}

// GetByAlienID lists the notifications of an alien, oldest first. An alien
// without notifications, or an unknown one, yields an empty list.
func (s *notificationService) GetByAlienID(ctx context.Context, alienID uint) ([]dto.NotificationResponse, error) {
	notifications, err := s.repo.FindByAlienID(ctx, alienID)
	if err != nil {
		return nil, err
	}

	res := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		res = append(res, toResponse(&notifications[i]))
	}
	return res, nil
}

func toResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:               n.ID,
		AlienID:          n.AlienID,
		Message:          n.Message,
		NotificationDate: n.NotificationDate,
		Location:         n.Location,
		DeliveryStatus:   n.DeliveryStatus,
	}
}
