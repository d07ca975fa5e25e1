package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{
		tagSvc: tagSvc,
	}
}

// ListTags pages tags ordered by how many models carry them. An
// optional keyword narrows the list by name.
func (s *TagHandler) ListTags(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := s.tagSvc.ListTags(c.Request.Context(), c.Query("keyword"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetTag returns a tag by slug.
func (s *TagHandler) GetTag(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	tag, err := s.tagSvc.GetTagBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tag)
}

// SuggestTags asks the LLM for tag candidates for a model description.
func (s *TagHandler) SuggestTags(c *gin.Context) {
	var req dto.TagSuggestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	tags, err := s.tagSvc.SuggestTags(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}
