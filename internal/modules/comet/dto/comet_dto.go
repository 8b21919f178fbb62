package dto

import (
	"time"

	"anoa.com/spacemanagement/internal/entity"
	commonDto "anoa.com/spacemanagement/pkg/dto"
)

type CometRequest struct {
	commonDto.CelestialFields
	NextAppearance time.Time `json:"nextAppearance" binding:"required"`
	TailColor      string    `json:"tailColor"`
}

type CometResponse struct {
	commonDto.CelestialResponse
	NextAppearance time.Time `json:"nextAppearance"`
	TailColor      string    `json:"tailColor"`
}

func NewCometResponse(c *entity.Comet) CometResponse {
	return CometResponse{
		CelestialResponse: commonDto.NewCelestialResponse(&c.CelestialBase),
		NextAppearance:    c.NextAppearance,
		TailColor:         c.TailColor,
	}
}
