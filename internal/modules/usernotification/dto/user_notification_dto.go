package dto

import "time"

// AddNotificationRequest is the broadcast posted by the catalog service.
type AddNotificationRequest struct {
	AlienID          uint      `json:"alienId" binding:"required"`
	Message          string    `json:"message" binding:"required"`
	NotificationDate time.Time `json:"notificationDate"`
	Location         string    `json:"location" binding:"max=100"`
}

type AddNotificationResponse struct {
	Recipients int `json:"recipients"`
}

type UserNotificationResponse struct {
	ID               uint      `json:"id"`
	AlienID          uint      `json:"alienId"`
	Message          string    `json:"message"`
	NotificationDate time.Time `json:"notificationDate"`
	Location         string    `json:"location"`
}

type UserIDUri struct {
	UserID uint `uri:"userId" binding:"required"`
}
