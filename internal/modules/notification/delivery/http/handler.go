package handler

import (
	"fmt"
	"net/http"

	"anoa.com/spacemanagement/internal/modules/notification/dto"
	notification "anoa.com/spacemanagement/internal/modules/notification/service"
	commonDto "anoa.com/spacemanagement/pkg/dto"
	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/validator"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service notification.NotificationService
}

func NewNotificationHandler(service notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	n, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/notifications/%d", n.ID))
	c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandler) GetByID(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	n, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) GetByAlienID(c *gin.Context) {
	var uri dto.AlienIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid alien id")
		return
	}

	notifications, err := h.service.GetByAlienID(c.Request.Context(), uri.AlienID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}
