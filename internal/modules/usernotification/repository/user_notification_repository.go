package repository

import (
	"context"
	"fmt"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/pkg/apperror"
	"gorm.io/gorm"
)

type UserNotificationRepository interface {
	// FanOut stores one copy of n per registered user and returns the copies.
	FanOut(ctx context.Context, n entity.UserNotification) ([]entity.UserNotification, error)
	FindByUserID(ctx context.Context, userID uint) ([]entity.UserNotification, error)
	Delete(ctx context.Context, id uint) error
}

type userNotificationRepository struct {
	db *gorm.DB
}

func NewUserNotificationRepository(db *gorm.DB) UserNotificationRepository {
	return &userNotificationRepository{db: db}
}

func (r *userNotificationRepository) FanOut(ctx context.Context, n entity.UserNotification) ([]entity.UserNotification, error) {
	var copies []entity.UserNotification

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userIDs []uint
		if err := tx.Model(&entity.User{}).Order("id").Pluck("id", &userIDs).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}

		copies = make([]entity.UserNotification, len(userIDs))
		for i, userID := range userIDs {
			copies[i] = n
			copies[i].ID = 0
			copies[i].UserID = userID
		}
		return tx.Create(&copies).Error
	})
	if err != nil {
		return nil, fmt.Errorf("fan out notification for alien %d: %w", n.AlienID, err)
	}
	return copies, nil
}

// FindByUserID returns apperror.ErrNotFound for an unknown user, and an
// empty list for a known user without notifications.
func (r *userNotificationRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.UserNotification, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("user %d: %w", userID, apperror.ErrNotFound)
	}

	notifications := []entity.UserNotification{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&notifications).Error
	return notifications, err
}

func (r *userNotificationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.UserNotification{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification %d: %w", id, apperror.ErrNotFound)
	}
	return nil
}
