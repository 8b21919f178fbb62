package dto

import (
	"time"

	"anoa.com/spacemanagement/internal/entity"
	commonDto "anoa.com/spacemanagement/pkg/dto"
)

type SatelliteRequest struct {
	commonDto.CelestialFields
	OrbitType  string    `json:"orbitType" binding:"max=100"`
	LaunchDate time.Time `json:"launchDate"`
	Function   string    `json:"function" binding:"max=200"`
}

type SatelliteResponse struct {
	commonDto.CelestialResponse
	OrbitType  string    `json:"orbitType"`
	LaunchDate time.Time `json:"launchDate"`
	Function   string    `json:"function"`
}

func NewSatelliteResponse(s *entity.Satellite) SatelliteResponse {
	return SatelliteResponse{
		CelestialResponse: commonDto.NewCelestialResponse(&s.CelestialBase),
		OrbitType:         s.OrbitType,
		LaunchDate:        s.LaunchDate,
		Function:          s.Function,
	}
}
