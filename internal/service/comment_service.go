package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/kafka"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/redis"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID, modelID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64, isAdmin bool) error
	GetComments(ctx context.Context, modelID uint64, page, pageSize int) (*dto.PageResponse, error)
	GetReplies(ctx context.Context, parentID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
	GetCommentsByUser(ctx context.Context, userID uint64, page, pageSize int) (*dto.PageResponse, error)
	GetCommentCount(ctx context.Context, modelID uint64) (int64, error)
}

type commentServiceImpl struct {
	engagementRepo repository.EngagementRepo
	modelRepo      repository.ModelRepo
	userRepo       repository.UserRepo
	producer       kafka.Producer
}

func NewCommentService(
	engagementRepo repository.EngagementRepo,
	modelRepo repository.ModelRepo,
	userRepo repository.UserRepo,
	producer kafka.Producer,
) CommentService {
	return &commentServiceImpl{
		engagementRepo: engagementRepo,
		modelRepo:      modelRepo,
		userRepo:       userRepo,
		producer:       producer,
	}
}

// CreateComment validates the model and, for replies, the parent
// comment, then inserts the fact row and bumps comment_count in one
// transaction. A reply's parent must be live and belong to the same
// model.
func (s *commentServiceImpl) CreateComment(ctx context.Context, userID, modelID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrParamInvalid
	}

	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModelNotFound
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var parentID uint64
	if req.ParentCommentID != nil && *req.ParentCommentID > 0 {
		parent, err := s.engagementRepo.GetCommentByID(ctx, *req.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.AIModelID != modelID {
			return nil, ErrParentNotFound
		}
		parentID = parent.ID
	}

	comment := &model.ModelComment{
		AIModelID:       modelID,
		UserID:          userID,
		Content:         content,
		ParentCommentID: parentID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
		Action:   kafka.ActionCommented,
		UserID:   userID,
		ModelID:  modelID,
		TargetID: comment.ID,
	})

	result := toCommentDTO(comment)
	result.Username = user.Username
	return result, nil
}

// UpdateComment replaces the content and flags the comment edited. Only
// the author may edit.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrParamInvalid
	}

	comment, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, ErrNotCommentOwner
	}

	if err := s.engagementRepo.UpdateCommentContent(ctx, commentID, content); err != nil {
		return nil, err
	}

	comment.Content = content
	comment.IsEdited = true
	return toCommentDTO(comment), nil
}

// DeleteComment soft-deletes and decrements comment_count once. The
// author or an admin may delete; a second delete is a no-op.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64, isAdmin bool) error {
	comment, err := s.engagementRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !isAdmin {
		return ErrNotCommentOwner
	}

	removed, err := s.engagementRepo.SoftDeleteComment(ctx, commentID, comment.AIModelID)
	if err != nil {
		return err
	}
	if removed {
		s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
			Action:   kafka.ActionCommentDeleted,
			UserID:   userID,
			ModelID:  comment.AIModelID,
			TargetID: commentID,
		})
	}
	return nil
}

func (s *commentServiceImpl) GetComments(ctx context.Context, modelID uint64, page, pageSize int) (*dto.PageResponse, error) {
	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModelNotFound
	}

	offset := (page - 1) * pageSize
	comments, total, err := s.engagementRepo.GetCommentsByModelID(ctx, modelID, pageSize, offset)
	if err != nil {
		return nil, err
	}

	list := s.expandComments(ctx, comments)
	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

func (s *commentServiceImpl) GetReplies(ctx context.Context, parentID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	parent, err := s.engagementRepo.GetCommentByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrCommentNotFound
	}

	offset := (page - 1) * pageSize
	replies, err := s.engagementRepo.GetRepliesByParentID(ctx, parentID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	return s.expandComments(ctx, replies), nil
}

// GetCommentsByUser lists the user's live comments across all models,
// replies included, newest first.
func (s *commentServiceImpl) GetCommentsByUser(ctx context.Context, userID uint64, page, pageSize int) (*dto.PageResponse, error) {
	offset := (page - 1) * pageSize
	comments, total, err := s.engagementRepo.GetCommentsByUserID(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, err
	}

	list := s.expandComments(ctx, comments)
	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

// GetCommentCount serves the live comment total, cache first.
func (s *commentServiceImpl) GetCommentCount(ctx context.Context, modelID uint64) (int64, error) {
	key := consts.ModelCommentCountKey + strconv.FormatUint(modelID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}

	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, ErrModelNotFound
	}

	realCount, err := s.engagementRepo.GetCommentCountByModelID(ctx, modelID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

func (s *commentServiceImpl) expandComments(ctx context.Context, comments []*model.ModelComment) []*dto.CommentDTO {
	ids := make([]uint64, 0, len(comments))
	seen := make(map[uint64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; !ok {
			seen[c.UserID] = struct{}{}
			ids = append(ids, c.UserID)
		}
	}

	usernames := make(map[uint64]string, len(ids))
	if len(ids) > 0 {
		if users, err := s.userRepo.GetUserByIDs(ctx, ids); err == nil {
			for _, u := range users {
				usernames[u.ID] = u.Username
			}
		}
	}

	list := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		item := toCommentDTO(c)
		item.Username = usernames[c.UserID]
		list = append(list, item)
	}
	return list
}

func toCommentDTO(c *model.ModelComment) *dto.CommentDTO {
	var parentID *uint64
	if c.ParentCommentID > 0 {
		v := c.ParentCommentID
		parentID = &v
	}
	return &dto.CommentDTO{
		ID:              c.ID,
		ModelID:         c.AIModelID,
		UserID:          c.UserID,
		Content:         c.Content,
		ParentCommentID: parentID,
		UpvoteCount:     c.UpvoteCount,
		DownvoteCount:   c.DownvoteCount,
		IsEdited:        c.IsEdited,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
