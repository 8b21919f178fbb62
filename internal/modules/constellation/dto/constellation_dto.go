package dto

import (
	"anoa.com/spacemanagement/internal/entity"
	commonDto "anoa.com/spacemanagement/pkg/dto"
)

type ConstellationRequest struct {
	commonDto.CelestialFields
	MainStars         string `json:"mainStars"`
	BestViewingMonths string `json:"bestViewingMonths" binding:"max=200"`
}

type ConstellationResponse struct {
	commonDto.CelestialResponse
	MainStars         string `json:"mainStars"`
	BestViewingMonths string `json:"bestViewingMonths"`
}

func NewConstellationResponse(c *entity.Constellation) ConstellationResponse {
	return ConstellationResponse{
		CelestialResponse: commonDto.NewCelestialResponse(&c.CelestialBase),
		MainStars:         c.MainStars,
		BestViewingMonths: c.BestViewingMonths,
	}
}

type MonthUri struct {
	Month string `uri:"month" binding:"required"`
}
