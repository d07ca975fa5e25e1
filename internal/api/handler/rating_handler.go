package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type RatingHandler struct {
	ratingSvc service.RatingService
}

func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingSvc: ratingSvc,
	}
}

// UpsertRating creates or overwrites the caller's rating on a model.
func (s *RatingHandler) UpsertRating(c *gin.Context) {
	modelID := pathID(c, "model_id")
	userID := callerID(c)
	if modelID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.RatingCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	rating, err := s.ratingSvc.UpsertRating(c.Request.Context(), userID, modelID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rating)
}

// DeleteRating removes a rating by id. Only the author may delete.
func (s *RatingHandler) DeleteRating(c *gin.Context) {
	ratingID := pathID(c, "rating_id")
	userID := callerID(c)
	if ratingID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.ratingSvc.DeleteRating(c.Request.Context(), userID, ratingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetUserRating returns the caller's rating on a model, if any.
func (s *RatingHandler) GetUserRating(c *gin.Context) {
	modelID := pathID(c, "model_id")
	userID := callerID(c)
	if modelID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	rating, err := s.ratingSvc.GetUserRating(c.Request.Context(), userID, modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rating)
}

// GetMyRatings pages through the caller's own ratings.
func (s *RatingHandler) GetMyRatings(c *gin.Context) {
	userID := callerID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := pageParams(c)

	ratings, err := s.ratingSvc.GetRatingsByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ratings)
}

// GetRatings pages through a model's ratings, newest first.
func (s *RatingHandler) GetRatings(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := pageParams(c)

	ratings, err := s.ratingSvc.GetRatings(c.Request.Context(), modelID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ratings)
}
