package entity

import "time"

// User and UserNotification live in the auth service database.

type User struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	Username      string             `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash  string             `gorm:"size:255;not null" json:"-"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	Notifications []UserNotification `gorm:"constraint:OnDelete:CASCADE" json:"notifications,omitempty"`
}

// UserNotification is one user's copy of a broadcast alien notification.
type UserNotification struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"userId"`
	AlienID          uint      `gorm:"not null" json:"alienId"`
	Message          string    `gorm:"type:text;not null" json:"message"`
	NotificationDate time.Time `json:"notificationDate"`
	Location         string    `gorm:"size:100" json:"location"`
}
