package service

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/kafka"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/redis"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

const cacheExpiration = 7 * 24 * time.Hour

type LikeService interface {
	ToggleLike(ctx context.Context, userID, modelID uint64) (*dto.LikeStateDTO, error)
	GetLikeCount(ctx context.Context, modelID uint64) (int64, error)
	IsLiked(ctx context.Context, userID, modelID uint64) (bool, error)
	GetLikedModels(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.ModelDTO, error)
}

type likeServiceImpl struct {
	engagementRepo repository.EngagementRepo
	modelRepo      repository.ModelRepo
	userRepo       repository.UserRepo
	producer       kafka.Producer
}

func NewLikeService(
	engagementRepo repository.EngagementRepo,
	modelRepo repository.ModelRepo,
	userRepo repository.UserRepo,
	producer kafka.Producer,
) LikeService {
	return &likeServiceImpl{
		engagementRepo: engagementRepo,
		modelRepo:      modelRepo,
		userRepo:       userRepo,
		producer:       producer,
	}
}

// ToggleLike flips the like state for (user, model) and returns the new
// state. The fact row and the like_count column move together in one
// transaction; a duplicate key on insert means a concurrent toggle won
// the race, so the like already exists and the state is simply reported.
func (s *likeServiceImpl) ToggleLike(ctx context.Context, userID, modelID uint64) (*dto.LikeStateDTO, error) {
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

	exists, err := s.engagementRepo.CheckLikeExists(ctx, userID, modelID)
	if err != nil {
		return nil, err
	}

	if exists {
		removed, err := s.engagementRepo.DeleteLike(ctx, userID, modelID)
		if err != nil {
			return nil, err
		}
		if removed {
			s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
				Action:  kafka.ActionUnliked,
				UserID:  userID,
				ModelID: modelID,
			})
		}
		return &dto.LikeStateDTO{Liked: false}, nil
	}

	like := &model.ModelLike{UserID: userID, AIModelID: modelID, CreatedAt: time.Now()}
	if err := s.engagementRepo.CreateLike(ctx, like); err != nil {
		if isDuplicateError(err) {
			log.InfoContext(ctx, "concurrent like insert lost the race", "userID", userID, "modelID", modelID)
			return &dto.LikeStateDTO{Liked: true}, nil
		}
		return nil, err
	}

	s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
		Action:  kafka.ActionLiked,
		UserID:  userID,
		ModelID: modelID,
	})

	return &dto.LikeStateDTO{Liked: true}, nil
}

// GetLikeCount serves the count from the redis cache and repopulates it
// from the fact table on a miss.
func (s *likeServiceImpl) GetLikeCount(ctx context.Context, modelID uint64) (int64, error) {
	key := consts.ModelLikeCountKey + strconv.FormatUint(modelID, 10)
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

	realCount, err := s.engagementRepo.GetLikeCountByModelID(ctx, modelID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

func (s *likeServiceImpl) IsLiked(ctx context.Context, userID, modelID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.engagementRepo.CheckLikeExists(ctx, userID, modelID)
}

func (s *likeServiceImpl) GetLikedModels(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.ModelDTO, error) {
	offset := (page - 1) * pageSize
	ids, err := s.engagementRepo.GetLikedModelIDs(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*dto.ModelDTO{}, nil
	}

	models, err := s.modelRepo.GetModelByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*model.AIModel, len(models))
	for _, m := range models {
		byID[m.ID] = m
	}

	list := make([]*dto.ModelDTO, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			list = append(list, toModelDTO(m))
		}
	}
	return list, nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
