package dto

import "mime/multipart"

type ImageResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// UploadImageRequest replaces (or creates) the image registered under Name.
type UploadImageRequest struct {
	Name string                `form:"name" binding:"required,max=100"`
	File *multipart.FileHeader `form:"file" binding:"required"`
}
