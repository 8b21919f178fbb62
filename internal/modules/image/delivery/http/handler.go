package handler

import (
	"net/http"

	"anoa.com/spacemanagement/internal/modules/image/dto"
	image "anoa.com/spacemanagement/internal/modules/image/service"
	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	service image.ImageService
}

func NewImageHandler(service image.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

func (h *ImageHandler) GetAll(c *gin.Context) {
	images, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) Upload(c *gin.Context) {
	var req dto.UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	img, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, img)
}
