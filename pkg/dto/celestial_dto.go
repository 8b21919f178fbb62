package dto

import (
	"time"

	"anoa.com/spacemanagement/internal/entity"
)

// CelestialFields are the request fields shared by every celestial subtype.
// ID only has to be sent on updates, where it must match the URL.
type CelestialFields struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description"`
	XCoordinate float64 `json:"xCoordinate"`
	YCoordinate float64 `json:"yCoordinate"`
	ZCoordinate float64 `json:"zCoordinate"`
}

// ApplyTo copies the shared fields onto b. The id and discriminator are
// owned by the repository and never taken from a request.
func (f CelestialFields) ApplyTo(b *entity.CelestialBase) {
	b.Name = f.Name
	b.Description = f.Description
	b.XCoordinate = f.XCoordinate
	b.YCoordinate = f.YCoordinate
	b.ZCoordinate = f.ZCoordinate
}

type CelestialResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	XCoordinate float64   `json:"xCoordinate"`
	YCoordinate float64   `json:"yCoordinate"`
	ZCoordinate float64   `json:"zCoordinate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewCelestialResponse(b *entity.CelestialBase) CelestialResponse {
	return CelestialResponse{
		ID:          b.ID,
		Type:        b.CelestialObjectType,
		Name:        b.Name,
		Description: b.Description,
		ImageURL:    b.ImageURL(),
		XCoordinate: b.XCoordinate,
		YCoordinate: b.YCoordinate,
		ZCoordinate: b.ZCoordinate,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type IDUri struct {
	ID uint `uri:"id" binding:"required"`
}

// MsgIDMismatch is the message returned when a PUT body names another object.
const MsgIDMismatch = "The ID in the URL does not match the ID in the request body."
