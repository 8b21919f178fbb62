package handler

import (
	"fmt"
	"net/http"

	"anoa.com/spacemanagement/internal/modules/comet/dto"
	comet "anoa.com/spacemanagement/internal/modules/comet/service"
	commonDto "anoa.com/spacemanagement/pkg/dto"
	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CometHandler struct {
	service comet.CometService
}

func NewCometHandler(service comet.CometService) *CometHandler {
	return &CometHandler{service: service}
}

func (h *CometHandler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CometHandler) GetByID(c *gin.Context) {
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

func (h *CometHandler) Create(c *gin.Context) {
	var req dto.CometRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/comets/%d", item.ID))
	c.JSON(http.StatusCreated, item)
}

func (h *CometHandler) Update(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	var req dto.CometRequest
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

func (h *CometHandler) Delete(c *gin.Context) {
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
