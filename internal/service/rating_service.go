package service

import (
	"context"
	log "log/slog"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/kafka"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

type RatingService interface {
	UpsertRating(ctx context.Context, userID, modelID uint64, req *dto.RatingCreateDTO) (*dto.RatingDTO, error)
	DeleteRating(ctx context.Context, userID, ratingID uint64) error
	GetUserRating(ctx context.Context, userID, modelID uint64) (*dto.RatingDTO, error)
	GetRatings(ctx context.Context, modelID uint64, page, pageSize int) (*dto.PageResponse, error)
	GetRatingsByUser(ctx context.Context, userID uint64, page, pageSize int) (*dto.PageResponse, error)
}

type ratingServiceImpl struct {
	engagementRepo repository.EngagementRepo
	modelRepo      repository.ModelRepo
	userRepo       repository.UserRepo
	producer       kafka.Producer
}

func NewRatingService(
	engagementRepo repository.EngagementRepo,
	modelRepo repository.ModelRepo,
	userRepo repository.UserRepo,
	producer kafka.Producer,
) RatingService {
	return &ratingServiceImpl{
		engagementRepo: engagementRepo,
		modelRepo:      modelRepo,
		userRepo:       userRepo,
		producer:       producer,
	}
}

// UpsertRating creates the caller's rating or overwrites an existing
// one. Either path ends with a full recompute of rating_count and
// average_rating inside the same transaction as the fact write, so the
// aggregate never drifts from the rows it summarizes.
func (s *ratingServiceImpl) UpsertRating(ctx context.Context, userID, modelID uint64, req *dto.RatingCreateDTO) (*dto.RatingDTO, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrRatingOutOfRange
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

	existing, err := s.engagementRepo.GetRatingByUserAndModel(ctx, userID, modelID)
	if err != nil {
		return nil, err
	}

	var rating *model.ModelRating
	isNew := existing == nil

	if isNew {
		rating = &model.ModelRating{
			UserID:    userID,
			AIModelID: modelID,
			Rating:    req.Rating,
			Review:    req.Review,
		}
		if err := s.engagementRepo.CreateRating(ctx, rating); err != nil {
			if isDuplicateError(err) {
				// A concurrent request created the row first; retry as update.
				log.InfoContext(ctx, "concurrent rating insert lost the race", "userID", userID, "modelID", modelID)
				existing, err = s.engagementRepo.GetRatingByUserAndModel(ctx, userID, modelID)
				if err != nil || existing == nil {
					return nil, ErrUnexpected
				}
				isNew = false
			} else {
				return nil, err
			}
		}
	}

	if !isNew {
		existing.Rating = req.Rating
		existing.Review = req.Review
		if err := s.engagementRepo.UpdateRating(ctx, existing); err != nil {
			return nil, err
		}
		rating = existing
	}

	if isNew {
		s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
			Action:   kafka.ActionRated,
			UserID:   userID,
			ModelID:  modelID,
			TargetID: rating.ID,
			Rating:   req.Rating,
		})
	}

	result := toRatingDTO(rating, modelID)
	result.Username = user.Username
	return result, nil
}

// DeleteRating removes a rating by id and recomputes the aggregate.
// Only the author may delete.
func (s *ratingServiceImpl) DeleteRating(ctx context.Context, userID, ratingID uint64) error {
	rating, err := s.engagementRepo.GetRatingByID(ctx, ratingID)
	if err != nil {
		return err
	}
	if rating == nil {
		return ErrRatingNotFound
	}
	if rating.UserID != userID {
		return ErrNotRatingOwner
	}

	removed, err := s.engagementRepo.DeleteRating(ctx, rating.ID, rating.AIModelID)
	if err != nil {
		return err
	}
	if removed {
		s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
			Action:   kafka.ActionRatingDeleted,
			UserID:   userID,
			ModelID:  rating.AIModelID,
			TargetID: rating.ID,
		})
	}
	return nil
}

func (s *ratingServiceImpl) GetUserRating(ctx context.Context, userID, modelID uint64) (*dto.RatingDTO, error) {
	rating, err := s.engagementRepo.GetRatingByUserAndModel(ctx, userID, modelID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}
	return toRatingDTO(rating, modelID), nil
}

func (s *ratingServiceImpl) GetRatings(ctx context.Context, modelID uint64, page, pageSize int) (*dto.PageResponse, error) {
	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModelNotFound
	}

	offset := (page - 1) * pageSize
	ratings, total, err := s.engagementRepo.GetRatingsByModelID(ctx, modelID, pageSize, offset)
	if err != nil {
		return nil, err
	}

	usernames := s.resolveUsernames(ctx, ratingUserIDs(ratings))

	list := make([]*dto.RatingDTO, 0, len(ratings))
	for _, r := range ratings {
		item := toRatingDTO(r, modelID)
		item.Username = usernames[r.UserID]
		list = append(list, item)
	}

	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

// GetRatingsByUser lists every rating the user has left, newest first.
func (s *ratingServiceImpl) GetRatingsByUser(ctx context.Context, userID uint64, page, pageSize int) (*dto.PageResponse, error) {
	offset := (page - 1) * pageSize
	ratings, total, err := s.engagementRepo.GetRatingsByUserID(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.RatingDTO, 0, len(ratings))
	for _, r := range ratings {
		list = append(list, toRatingDTO(r, r.AIModelID))
	}

	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

func (s *ratingServiceImpl) resolveUsernames(ctx context.Context, ids []uint64) map[uint64]string {
	usernames := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return usernames
	}
	users, err := s.userRepo.GetUserByIDs(ctx, ids)
	if err != nil {
		log.WarnContext(ctx, "resolve usernames failed", "err", err)
		return usernames
	}
	for _, u := range users {
		usernames[u.ID] = u.Username
	}
	return usernames
}

func ratingUserIDs(ratings []*model.ModelRating) []uint64 {
	seen := make(map[uint64]struct{}, len(ratings))
	ids := make([]uint64, 0, len(ratings))
	for _, r := range ratings {
		if _, ok := seen[r.UserID]; !ok {
			seen[r.UserID] = struct{}{}
			ids = append(ids, r.UserID)
		}
	}
	return ids
}

func toRatingDTO(r *model.ModelRating, modelID uint64) *dto.RatingDTO {
	return &dto.RatingDTO{
		ID:        r.ID,
		ModelID:   modelID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Review:    r.Review,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
