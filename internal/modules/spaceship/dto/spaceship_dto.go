package dto

import (
	"time"

	"anoa.com/spacemanagement/internal/entity"
	commonDto "anoa.com/spacemanagement/pkg/dto"
)

type SpaceshipRequest struct {
	commonDto.CelestialFields
	Mission    string    `json:"mission"`
	LaunchDate time.Time `json:"launchDate"`
	ReturnDate time.Time `json:"returnDate"`
}

type SpaceshipResponse struct {
	commonDto.CelestialResponse
	Mission    string    `json:"mission"`
	LaunchDate time.Time `json:"launchDate"`
	ReturnDate time.Time `json:"returnDate"`
}

func NewSpaceshipResponse(s *entity.Spaceship) SpaceshipResponse {
	return SpaceshipResponse{
		CelestialResponse: commonDto.NewCelestialResponse(&s.CelestialBase),
		Mission:           s.Mission,
		LaunchDate:        s.LaunchDate,
		ReturnDate:        s.ReturnDate,
	}
}
