package handler

import (
	"fmt"
	"net/http"

	"anoa.com/spacemanagement/internal/modules/alien/dto"
	alien "anoa.com/spacemanagement/internal/modules/alien/service"
	commonDto "anoa.com/spacemanagement/pkg/dto"
	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AlienHandler struct {
	service alien.AlienService
}

func NewAlienHandler(service alien.AlienService) *AlienHandler {
	return &AlienHandler{service: service}
}

func (h *AlienHandler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *AlienHandler) GetByID(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *AlienHandler) Create(c *gin.Context) {
	var req dto.AlienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	item, err := h.service.Create(c.Request.Context(), req, response.GetUsername(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/aliens/%d", item.ID))
	c.JSON(http.StatusCreated, item)
}

func (h *AlienHandler) Update(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	var req dto.AlienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	if req.ID != uri.ID {
		response.BindError(c, commonDto.MsgIDMismatch)
		return
	}

	if err := h.service.Update(c.Request.Context(), uri.ID, req, response.GetUsername(c)); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AlienHandler) Delete(c *gin.Context) {
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

func (h *AlienHandler) GetFriendly(c *gin.Context) {
	items, err := h.service.GetFriendly(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *AlienHandler) GetByOriginPlanet(c *gin.Context) {
	var uri dto.OriginPlanetUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	items, err := h.service.GetByOriginPlanet(c.Request.Context(), uri.OriginPlanet)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
