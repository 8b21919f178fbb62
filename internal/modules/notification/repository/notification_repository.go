package repository

import (
	"context"
	"errors"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/pkg/apperror"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	FindByID(ctx context.Context, id uint) (*entity.Notification, error)
	FindByAlienID(ctx context.Context, alienID uint) ([]entity.Notification, error)
	AlienExists(ctx context.Context, alienID uint) (bool, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.db.WithContext(ctx).Omit("Alien").Create(notification).Error
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ?", id).
		Update("delivery_status", status).Error
}

func (r *notificationRepository) FindByID(ctx context.Context, id uint) (*entity.Notification, error) {
	var notification entity.Notification
	if err := r.db.WithContext(ctx).First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindByAlienID(ctx context.Context, alienID uint) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := r.db.WithContext(ctx).
		Where("alien_id = ?", alienID).
		Order("id").
		Find(&notifications).Error
	return notifications, err
}

// AlienExists checks the alien row a notification would point to.
func (r *notificationRepository) AlienExists(ctx context.Context, alienID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.CelestialObject{}).
		Where("id = ? AND celestial_object_type = ?", alienID, entity.TypeAlien).
		Count(&count).Error
	return count > 0, err
}
