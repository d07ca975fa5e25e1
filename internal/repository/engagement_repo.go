package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/util"
)

// EngagementRepo owns the like/rating/comment fact tables and keeps the
// denormalized counters on ai_models in step with them. Every write that
// touches a fact row and a counter runs in a single transaction so the
// two can never drift under concurrency.
type EngagementRepo interface {
	CreateLike(ctx context.Context, like *model.ModelLike) error
	DeleteLike(ctx context.Context, userID, modelID uint64) (bool, error)
	CheckLikeExists(ctx context.Context, userID, modelID uint64) (bool, error)
	GetLikeCountByModelID(ctx context.Context, modelID uint64) (int64, error)
	GetLikedModelIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error)

	CreateRating(ctx context.Context, rating *model.ModelRating) error
	UpdateRating(ctx context.Context, rating *model.ModelRating) error
	DeleteRating(ctx context.Context, ratingID, modelID uint64) (bool, error)
	GetRatingByID(ctx context.Context, ratingID uint64) (*model.ModelRating, error)
	GetRatingByUserAndModel(ctx context.Context, userID, modelID uint64) (*model.ModelRating, error)
	GetRatingsByModelID(ctx context.Context, modelID uint64, limit, offset int) ([]*model.ModelRating, int64, error)
	GetRatingsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.ModelRating, int64, error)
	GetRatingAggregate(ctx context.Context, modelID uint64) (int64, *float64, error)

	CreateComment(ctx context.Context, comment *model.ModelComment) error
	UpdateCommentContent(ctx context.Context, commentID uint64, content string) error
	SoftDeleteComment(ctx context.Context, commentID, modelID uint64) (bool, error)
	GetCommentByID(ctx context.Context, commentID uint64) (*model.ModelComment, error)
	GetCommentsByModelID(ctx context.Context, modelID uint64, limit, offset int) ([]*model.ModelComment, int64, error)
	GetCommentsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.ModelComment, int64, error)
	GetRepliesByParentID(ctx context.Context, parentID uint64, limit, offset int) ([]*model.ModelComment, error)
	GetCommentCountByModelID(ctx context.Context, modelID uint64) (int64, error)
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db: db}
}

// CreateLike inserts the like row and bumps like_count atomically. The
// composite primary key on (user_id, ai_model_id) turns a concurrent
// double insert into a duplicate key error, which the caller maps to
// "already liked".
func (s *EngagementRepoImpl) CreateLike(ctx context.Context, like *model.ModelLike) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(like); result.Error != nil {
			return result.Error
		}
		return tx.Model(&model.AIModel{}).
			Where("id = ?", like.AIModelID).
			Update("like_count", gorm.Expr("like_count + 1")).Error
	})
}

// DeleteLike removes the like row and decrements like_count only when a
// row was actually deleted. Returns whether the like existed.
func (s *EngagementRepoImpl) DeleteLike(ctx context.Context, userID, modelID uint64) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND ai_model_id = ?", userID, modelID).
			Delete(&model.ModelLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&model.AIModel{}).
			Where("id = ? AND like_count > 0", modelID).
			Update("like_count", gorm.Expr("like_count - 1")).Error
	})
	return removed, err
}

func (s *EngagementRepoImpl) CheckLikeExists(ctx context.Context, userID, modelID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ModelLike{}).
		Where("user_id = ? AND ai_model_id = ?", userID, modelID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) GetLikeCountByModelID(ctx context.Context, modelID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ModelLike{}).
		Where("ai_model_id = ?", modelID).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) GetLikedModelIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	var modelIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.ModelLike{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Pluck("ai_model_id", &modelIDs).Error
	return modelIDs, err
}

// recomputeRatingAggregate rereads the fact table inside the caller's
// transaction and overwrites rating_count and average_rating. The
// average is rounded half-up to two decimals and goes back to NULL when
// the last rating is removed.
func recomputeRatingAggregate(tx *gorm.DB, modelID uint64) error {
	var agg struct {
		Cnt int64
		Avg *float64
	}
	err := tx.Model(&model.ModelRating{}).
		Select("COUNT(*) AS cnt, AVG(rating) AS avg").
		Where("ai_model_id = ?", modelID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	var rounded *float64
	if agg.Cnt > 0 && agg.Avg != nil {
		v := util.RoundHalfUp2(*agg.Avg)
		rounded = &v
	}

	return tx.Model(&model.AIModel{}).
		Where("id = ?", modelID).
		Updates(map[string]interface{}{
			"rating_count":   agg.Cnt,
			"average_rating": rounded,
		}).Error
}

func (s *EngagementRepoImpl) CreateRating(ctx context.Context, rating *model.ModelRating) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(rating); result.Error != nil {
			return result.Error
		}
		return recomputeRatingAggregate(tx, rating.AIModelID)
	})
}

func (s *EngagementRepoImpl) UpdateRating(ctx context.Context, rating *model.ModelRating) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ModelRating{}).
			Where("id = ?", rating.ID).
			Updates(map[string]interface{}{
				"rating": rating.Rating,
				"review": rating.Review,
			})
		if result.Error != nil {
			return result.Error
		}
		return recomputeRatingAggregate(tx, rating.AIModelID)
	})
}

func (s *EngagementRepoImpl) DeleteRating(ctx context.Context, ratingID, modelID uint64) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", ratingID).Delete(&model.ModelRating{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return recomputeRatingAggregate(tx, modelID)
	})
	return removed, err
}

func (s *EngagementRepoImpl) GetRatingByID(ctx context.Context, ratingID uint64) (*model.ModelRating, error) {
	rating := &model.ModelRating{}
	result := s.db.WithContext(ctx).First(rating, ratingID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return rating, nil
}

func (s *EngagementRepoImpl) GetRatingByUserAndModel(ctx context.Context, userID, modelID uint64) (*model.ModelRating, error) {
	rating := &model.ModelRating{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND ai_model_id = ?", userID, modelID).
		First(rating)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return rating, nil
}

func (s *EngagementRepoImpl) GetRatingsByModelID(ctx context.Context, modelID uint64, limit, offset int) ([]*model.ModelRating, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.ModelRating{}).
		Where("ai_model_id = ?", modelID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ratings := make([]*model.ModelRating, 0)
	result := s.db.WithContext(ctx).
		Where("ai_model_id = ?", modelID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ratings)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return ratings, total, nil
}

func (s *EngagementRepoImpl) GetRatingsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.ModelRating, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.ModelRating{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ratings := make([]*model.ModelRating, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ratings)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return ratings, total, nil
}

func (s *EngagementRepoImpl) GetRatingAggregate(ctx context.Context, modelID uint64) (int64, *float64, error) {
	var agg struct {
		Cnt int64
		Avg *float64
	}
	err := s.db.WithContext(ctx).Model(&model.ModelRating{}).
		Select("COUNT(*) AS cnt, AVG(rating) AS avg").
		Where("ai_model_id = ?", modelID).
		Scan(&agg).Error
	if err != nil {
		return 0, nil, err
	}

	var rounded *float64
	if agg.Cnt > 0 && agg.Avg != nil {
		v := util.RoundHalfUp2(*agg.Avg)
		rounded = &v
	}
	return agg.Cnt, rounded, nil
}

func (s *EngagementRepoImpl) CreateComment(ctx context.Context, comment *model.ModelComment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(comment); result.Error != nil {
			return result.Error
		}
		return tx.Model(&model.AIModel{}).
			Where("id = ?", comment.AIModelID).
			Update("comment_count", gorm.Expr("comment_count + 1")).Error
	})
}

func (s *EngagementRepoImpl) UpdateCommentContent(ctx context.Context, commentID uint64, content string) error {
	return s.db.WithContext(ctx).Model(&model.ModelComment{}).
		Where("id = ? AND is_deleted = ?", commentID, false).
		Updates(map[string]interface{}{
			"content":   content,
			"is_edited": true,
		}).Error
}

// SoftDeleteComment marks the row deleted and decrements comment_count
// once. Re-deleting an already deleted comment is a no-op.
func (s *EngagementRepoImpl) SoftDeleteComment(ctx context.Context, commentID, modelID uint64) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ModelComment{}).
			Where("id = ? AND is_deleted = ?", commentID, false).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&model.AIModel{}).
			Where("id = ? AND comment_count > 0", modelID).
			Update("comment_count", gorm.Expr("comment_count - 1")).Error
	})
	return removed, err
}

func (s *EngagementRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.ModelComment, error) {
	comment := &model.ModelComment{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", commentID, false).
		First(comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return comment, nil
}

func (s *EngagementRepoImpl) GetCommentsByModelID(ctx context.Context, modelID uint64, limit, offset int) ([]*model.ModelComment, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.ModelComment{}).
		Where("ai_model_id = ? AND parent_comment_id = ? AND is_deleted = ?", modelID, 0, false).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]*model.ModelComment, 0)
	result := s.db.WithContext(ctx).
		Where("ai_model_id = ? AND parent_comment_id = ? AND is_deleted = ?", modelID, 0, false).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return comments, total, nil
}

func (s *EngagementRepoImpl) GetCommentsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.ModelComment, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.ModelComment{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]*model.ModelComment, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return comments, total, nil
}

func (s *EngagementRepoImpl) GetRepliesByParentID(ctx context.Context, parentID uint64, limit, offset int) ([]*model.ModelComment, error) {
	comments := make([]*model.ModelComment, 0)
	result := s.db.WithContext(ctx).
		Where("parent_comment_id = ? AND is_deleted = ?", parentID, false).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

func (s *EngagementRepoImpl) GetCommentCountByModelID(ctx context.Context, modelID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ModelComment{}).
		Where("ai_model_id = ? AND is_deleted = ?", modelID, false).
		Count(&count).Error
	return count, err
}
