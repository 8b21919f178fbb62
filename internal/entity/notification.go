package entity

import "time"

// Delivery states of a locally recorded notification.
const (
	DeliveryPersisted   = "persisted"
	DeliveryRelayed     = "relayed"
	DeliveryRelayFailed = "relay_failed"
)

// UnknownLocation is the only location the catalog reports for now.
const UnknownLocation = "Unknown"

// Notification records an alien lifecycle event in the catalog database.
// Rows are removed together with their alien.
type Notification struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	AlienID          uint             `gorm:"not null;index" json:"alienId"`
	Alien            *CelestialObject `gorm:"foreignKey:AlienID;constraint:OnDelete:CASCADE" json:"-"`
	Message          string           `gorm:"type:text;not null" json:"message"`
	NotificationDate time.Time        `gorm:"not null" json:"notificationDate"`
	Location         string           `gorm:"size:100" json:"location"`
	DeliveryStatus   string           `gorm:"size:20;not null;default:persisted" json:"deliveryStatus"`
}
