package dto

type ListFilter struct {
	Type string `form:"type" binding:"omitempty,oneof=Planet Moon Satellite Comet Constellation Spaceship Alien"`
}
