package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type ModelHandler struct {
	modelSvc service.ModelService
}

func NewModelHandler(modelSvc service.ModelService) *ModelHandler {
	return &ModelHandler{
		modelSvc: modelSvc,
	}
}

// CreateModel registers a new model contribution.
func (s *ModelHandler) CreateModel(c *gin.Context) {
	userID := callerID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ModelCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	m, err := s.modelSvc.CreateModel(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "model created", m)
}

// GetModel returns a model by id and counts the view.
func (s *ModelHandler) GetModel(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	m, err := s.modelSvc.GetModelByID(c.Request.Context(), modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, m)
}

// GetModelBySlug returns a model by slug and counts the view.
func (s *ModelHandler) GetModelBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	m, err := s.modelSvc.GetModelBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, m)
}

// ListModels pages the catalog with optional filters.
func (s *ModelHandler) ListModels(c *gin.Context) {
	page, pageSize := pageParams(c)

	filter := repository.ModelFilter{
		Status:       c.Query("status"),
		Pricing:      c.Query("pricing"),
		Category:     c.Query("category"),
		TagSlug:      c.Query("tag"),
		Keyword:      strings.TrimSpace(c.Query("keyword")),
		FeaturedOnly: c.Query("featured") == "true",
	}
	if raw := c.Query("organizationId"); raw != "" {
		if orgID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.OrganizationID = orgID
		}
	}

	result, err := s.modelSvc.ListModels(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SearchModels runs a full-text search over active models.
func (s *ModelHandler) SearchModels(c *gin.Context) {
	page, pageSize := pageParams(c)

	models, err := s.modelSvc.SearchModels(c.Request.Context(), c.Query("q"), c.Query("tag"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, models)
}

// Suggest returns completion candidates for a name prefix.
func (s *ModelHandler) Suggest(c *gin.Context) {
	suggestions, err := s.modelSvc.GetSuggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, suggestions)
}

// GetTrendingModels lists the most engaged active models.
func (s *ModelHandler) GetTrendingModels(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	models, err := s.modelSvc.GetTrendingModels(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, models)
}

// UpdateModel edits a model; only the contributor or an admin may.
func (s *ModelHandler) UpdateModel(c *gin.Context) {
	modelID := pathID(c, "model_id")
	userID := callerID(c)
	if modelID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ModelUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	m, err := s.modelSvc.UpdateModel(c.Request.Context(), userID, modelID, isAdmin(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, m)
}

// UpdateStatus changes the lifecycle state of a model (admin only).
func (s *ModelHandler) UpdateStatus(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ModelStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.modelSvc.UpdateStatus(c.Request.Context(), modelID, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// SetFeatured toggles the featured flag (admin only).
func (s *ModelHandler) SetFeatured(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ModelFeatureDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.modelSvc.SetFeatured(c.Request.Context(), modelID, req.Featured); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteModel removes a model and all of its engagement records.
func (s *ModelHandler) DeleteModel(c *gin.Context) {
	modelID := pathID(c, "model_id")
	userID := callerID(c)
	if modelID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.modelSvc.DeleteModel(c.Request.Context(), userID, modelID, isAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetEngagementState returns the full counter block of a model.
func (s *ModelHandler) GetEngagementState(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	state, err := s.modelSvc.GetEngagementState(c.Request.Context(), callerID(c), modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// GetViewCount returns the view counter of a model.
func (s *ModelHandler) GetViewCount(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	count, err := s.modelSvc.GetViewCount(c.Request.Context(), modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CountDTO{Count: count})
}

// FetchDocMetadata extracts title and description from a documentation URL.
func (s *ModelHandler) FetchDocMetadata(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	meta, err := s.modelSvc.FetchDocMetadata(c.Request.Context(), url)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, meta)
}
