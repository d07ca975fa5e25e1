package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type LikeHandler struct {
	likeSvc service.LikeService
}

func NewLikeHandler(likeSvc service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeSvc: likeSvc,
	}
}

// ToggleLike flips the caller's like on a model.
func (s *LikeHandler) ToggleLike(c *gin.Context) {
	modelID := pathID(c, "model_id")
	userID := callerID(c)
	if modelID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	state, err := s.likeSvc.ToggleLike(c.Request.Context(), userID, modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// GetLikeCount returns the like counter of a model.
func (s *LikeHandler) GetLikeCount(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	count, err := s.likeSvc.GetLikeCount(c.Request.Context(), modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CountDTO{Count: count})
}

// IsLiked reports whether the caller has liked the model.
func (s *LikeHandler) IsLiked(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	liked, err := s.likeSvc.IsLiked(c.Request.Context(), callerID(c), modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.LikeStateDTO{Liked: liked})
}

// GetLikedModels lists the models the caller has liked, newest first.
func (s *LikeHandler) GetLikedModels(c *gin.Context) {
	userID := callerID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := pageParams(c)

	models, err := s.likeSvc.GetLikedModels(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, models)
}
