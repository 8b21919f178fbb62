package dto

import (
	"anoa.com/spacemanagement/internal/entity"
	commonDto "anoa.com/spacemanagement/pkg/dto"
)

type MoonRequest struct {
	commonDto.CelestialFields
	PlanetID           uint    `json:"planetId" binding:"required"`
	OrbitalPeriod      float64 `json:"orbitalPeriod"`
	DistanceFromPlanet float64 `json:"distanceFromPlanet"`
}

type PlanetSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type MoonResponse struct {
	commonDto.CelestialResponse
	PlanetID           uint           `json:"planetId"`
	Planet             *PlanetSummary `json:"planet,omitempty"`
	OrbitalPeriod      float64        `json:"orbitalPeriod"`
	DistanceFromPlanet float64        `json:"distanceFromPlanet"`
}

func NewMoonResponse(m *entity.Moon) MoonResponse {
	res := MoonResponse{
		CelestialResponse:  commonDto.NewCelestialResponse(&m.CelestialBase),
		PlanetID:           m.PlanetID,
		OrbitalPeriod:      m.OrbitalPeriod,
		DistanceFromPlanet: m.DistanceFromPlanet,
	}
	if m.Planet != nil {
		res.Planet = &PlanetSummary{ID: m.Planet.ID, Name: m.Planet.Name}
	}
	return res
}
