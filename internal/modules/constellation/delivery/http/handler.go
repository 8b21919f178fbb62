package handler

import (
	"fmt"
	"net/http"

	"anoa.com/spacemanagement/internal/modules/constellation/dto"
	constellation "anoa.com/spacemanagement/internal/modules/constellation/service"
	commonDto "anoa.com/spacemanagement/pkg/dto"
	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ConstellationHandler struct {
	service constellation.ConstellationService
}

func NewConstellationHandler(service constellation.ConstellationService) *ConstellationHandler {
	return &ConstellationHandler{service: service}
}

func (h *ConstellationHandler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ConstellationHandler) GetByID(c *gin.Context) {
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

func (h *ConstellationHandler) Create(c *gin.Context) {
	var req dto.ConstellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/constellations/%d", item.ID))
	c.JSON(http.StatusCreated, item)
}

func (h *ConstellationHandler) Update(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	var req dto.ConstellationRequest
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

func (h *ConstellationHandler) Delete(c *gin.Context) {
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

func (h *ConstellationHandler) GetByMonth(c *gin.Context) {
	var uri dto.MonthUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	items, err := h.service.GetByMonth(c.Request.Context(), uri.Month)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
