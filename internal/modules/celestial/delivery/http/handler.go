package handler

import (
	"net/http"

	"anoa.com/spacemanagement/internal/modules/celestial/dto"
	celestial "anoa.com/spacemanagement/internal/modules/celestial/service"
	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CelestialHandler struct {
	service celestial.CelestialService
}

func NewCelestialHandler(service celestial.CelestialService) *CelestialHandler {
	return &CelestialHandler{service: service}
}

func (h *CelestialHandler) GetAll(c *gin.Context) {
	var filter dto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	objs, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, objs)
}
