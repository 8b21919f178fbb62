package dto

import "time"

// RelayPayload is the body posted to the user-notification service.
type RelayPayload struct {
	AlienID          uint      `json:"alienId"`
	Message          string    `json:"message"`
	NotificationDate time.Time `json:"notificationDate"`
	Location         string    `json:"location"`
}

type CreateNotificationRequest struct {
	AlienID          uint       `json:"alienId" binding:"required"`
	Message          string     `json:"message" binding:"required"`
	NotificationDate *time.Time `json:"notificationDate"`
	Location         string     `json:"location" binding:"max=100"`
}

type NotificationResponse struct {
	ID               uint      `json:"id"`
	AlienID          uint      `json:"alienId"`
	Message          string    `json:"message"`
	NotificationDate time.Time `json:"notificationDate"`
	Location         string    `json:"location"`
	DeliveryStatus   string    `json:"deliveryStatus"`
}

type AlienIDUri struct {
	AlienID uint `uri:"alienId" binding:"required"`
}
