package entity

import "time"

// Image is a named asset. The name doubles as the lookup key for the default
// image of a category ("alien", "moon", "cometBlue", "earth", ...).
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Path      string    `gorm:"type:text;not null" json:"path"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
