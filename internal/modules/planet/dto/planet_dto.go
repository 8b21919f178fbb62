package dto

import (
	"anoa.com/spacemanagement/internal/entity"
	commonDto "anoa.com/spacemanagement/pkg/dto"
)

type PlanetRequest struct {
	commonDto.CelestialFields
	HasRings        bool    `json:"hasRings"`
	SupportsLife    bool    `json:"supportsLife"`
	Diameter        float64 `json:"diameter"`
	Mass            float64 `json:"mass"`
	DistanceFromSun float64 `json:"distanceFromSun"`
	SurfaceTexture  string  `json:"surfaceTexture"`
}

type MoonSummary struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	ImageURL           *string `json:"imageUrl"`
	XCoordinate        float64 `json:"xCoordinate"`
	YCoordinate        float64 `json:"yCoordinate"`
	ZCoordinate        float64 `json:"zCoordinate"`
	OrbitalPeriod      float64 `json:"orbitalPeriod"`
	DistanceFromPlanet float64 `json:"distanceFromPlanet"`
}

type PlanetResponse struct {
	commonDto.CelestialResponse
	HasRings        bool          `json:"hasRings"`
	SupportsLife    bool          `json:"supportsLife"`
	Diameter        float64       `json:"diameter"`
	Mass            float64       `json:"mass"`
	DistanceFromSun float64       `json:"distanceFromSun"`
	SurfaceTexture  string        `json:"surfaceTexture"`
	Moons           []MoonSummary `json:"moons"`
}

func NewPlanetResponse(p *entity.Planet) PlanetResponse {
	moons := make([]MoonSummary, 0, len(p.Moons))
	for i := range p.Moons {
		m := &p.Moons[i]
		moons = append(moons, MoonSummary{
			ID:                 m.ID,
			Name:               m.Name,
			Description:        m.Description,
			ImageURL:           m.ImageURL(),
			XCoordinate:        m.XCoordinate,
			YCoordinate:        m.YCoordinate,
			ZCoordinate:        m.ZCoordinate,
			OrbitalPeriod:      m.OrbitalPeriod,
			DistanceFromPlanet: m.DistanceFromPlanet,
		})
	}

	return PlanetResponse{
		CelestialResponse: commonDto.NewCelestialResponse(&p.CelestialBase),
		HasRings:          p.HasRings,
		SupportsLife:      p.SupportsLife,
		Diameter:          p.Diameter,
		Mass:              p.Mass,
		DistanceFromSun:   p.DistanceFromSun,
		SurfaceTexture:    p.SurfaceTexture,
		Moons:             moons,
	}
}
