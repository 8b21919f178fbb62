package dto

import (
	"anoa.com/spacemanagement/internal/entity"
	commonDto "anoa.com/spacemanagement/pkg/dto"
)

type AlienRequest struct {
	commonDto.CelestialFields
	OriginPlanet string `json:"originPlanet" binding:"required,max=100"`
	IsFriendly   bool   `json:"isFriendly"`
}

type AlienResponse struct {
	commonDto.CelestialResponse
	OriginPlanet string `json:"originPlanet"`
	IsFriendly   bool   `json:"isFriendly"`
}

func NewAlienResponse(a *entity.Alien) AlienResponse {
	return AlienResponse{
		CelestialResponse: commonDto.NewCelestialResponse(&a.CelestialBase),
		OriginPlanet:      a.OriginPlanet,
		IsFriendly:        a.IsFriendly,
	}
}

type OriginPlanetUri struct {
	OriginPlanet string `uri:"originPlanet" binding:"required"`
}
