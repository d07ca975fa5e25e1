package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// UploadModelImage replaces the image of a model.
func (s *MediaHandler) UploadModelImage(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	url, err := s.mediaSvc.UploadModelImage(c.Request.Context(), c.GetUint64("user_id"), modelID, isAdmin(c), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"url": url})
}

// UploadAvatar replaces the caller's avatar.
func (s *MediaHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	url, err := s.mediaSvc.UploadAvatar(c.Request.Context(), c.GetUint64("user_id"), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"url": url})
}
