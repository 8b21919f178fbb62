package handler

import (
	"fmt"
	"net/http"

	"anoa.com/spacemanagement/internal/modules/planet/dto"
	planet "anoa.com/spacemanagement/internal/modules/planet/service"
	commonDto "anoa.com/spacemanagement/pkg/dto"
	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PlanetHandler struct {
	service planet.PlanetService
}

func NewPlanetHandler(service planet.PlanetService) *PlanetHandler {
	return &PlanetHandler{service: service}
}

func (h *PlanetHandler) GetAll(c *gin.Context) {
	planets, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, planets)
}

func (h *PlanetHandler) GetWithLife(c *gin.Context) {
	planets, err := h.service.GetWithLife(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, planets)
}

func (h *PlanetHandler) GetWithRings(c *gin.Context) {
	planets, err := h.service.GetWithRings(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, planets)
}

func (h *PlanetHandler) GetByID(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PlanetHandler) Create(c *gin.Context) {
	var req dto.PlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/planets/%d", p.ID))
	c.JSON(http.StatusCreated, p)
}

func (h *PlanetHandler) Update(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	var req dto.PlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	if req.ID != uri.ID {
		response.BindError(c, commonDto.MsgIDMismatch)
		return
	}

	if err := h.service.Update(c.Request.Context(), uri.ID, req); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PlanetHandler) Delete(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
