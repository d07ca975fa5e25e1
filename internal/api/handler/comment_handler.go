package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// CreateComment posts a comment or a reply under a model.
func (s *CommentHandler) CreateComment(c *gin.Context) {
	modelID := pathID(c, "model_id")
	userID := callerID(c)
	if modelID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, modelID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// UpdateComment edits the caller's own comment.
func (s *CommentHandler) UpdateComment(c *gin.Context) {
	commentID := pathID(c, "comment_id")
	userID := callerID(c)
	if commentID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.UpdateComment(c.Request.Context(), userID, commentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment soft-deletes a comment; admins may delete any.
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := pathID(c, "comment_id")
	userID := callerID(c)
	if commentID == 0 || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID, isAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetComments pages through the top-level comments of a model.
func (s *CommentHandler) GetComments(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := pageParams(c)

	comments, err := s.commentSvc.GetComments(c.Request.Context(), modelID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// GetReplies lists the replies under a comment, oldest first.
func (s *CommentHandler) GetReplies(c *gin.Context) {
	parentID := pathID(c, "comment_id")
	if parentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := pageParams(c)

	replies, err := s.commentSvc.GetReplies(c.Request.Context(), parentID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, replies)
}

// GetMyComments pages through the caller's own comments.
func (s *CommentHandler) GetMyComments(c *gin.Context) {
	userID := callerID(c)
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := pageParams(c)

	comments, err := s.commentSvc.GetCommentsByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// GetCommentCount returns the live comment counter of a model.
func (s *CommentHandler) GetCommentCount(c *gin.Context) {
	modelID := pathID(c, "model_id")
	if modelID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	count, err := s.commentSvc.GetCommentCount(c.Request.Context(), modelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CountDTO{Count: count})
}
