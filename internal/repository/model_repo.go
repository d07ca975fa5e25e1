package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
)

// ModelFilter narrows ListModels. Zero values mean "no filter".
type ModelFilter struct {
	Status         string
	Pricing        string
	Category       string
	OrganizationID uint64
	TagSlug        string
	FeaturedOnly   bool
	Keyword        string
}

type ModelRepo interface {
	GetModelByID(ctx context.Context, id uint64) (*model.AIModel, error)
	GetModelBySlug(ctx context.Context, slug string) (*model.AIModel, error)
	GetModelByIDs(ctx context.Context, ids []uint64) ([]*model.AIModel, error)
	ListModels(ctx context.Context, filter ModelFilter, limit, offset int) ([]*model.AIModel, int64, error)
	ListActiveModelIDs(ctx context.Context) ([]uint64, error)
	GetTrendingModels(ctx context.Context, limit int) ([]*model.AIModel, error)
	CreateModel(ctx context.Context, m *model.AIModel, tags []*model.Tag) error
	UpdateModel(ctx context.Context, m *model.AIModel) error
	ReplaceModelTags(ctx context.Context, modelID uint64, tags []*model.Tag) error
	UpdateStatus(ctx context.Context, id uint64, status string) (int64, error)
	UpdateFeatured(ctx context.Context, id uint64, featured bool) (int64, error)
	UpdateImageURL(ctx context.Context, id uint64, imageURL string) error
	IncrementViewCount(ctx context.Context, id uint64) error
	SetEngagementCounters(ctx context.Context, id uint64, likeCount, commentCount, ratingCount int64, averageRating *float64) error
	DeleteModel(ctx context.Context, id uint64) error
}

type ModelRepoImpl struct {
	db *gorm.DB
}

func NewModelRepo(db *gorm.DB) ModelRepo {
	return &ModelRepoImpl{db: db}
}

func (s *ModelRepoImpl) GetModelByID(ctx context.Context, id uint64) (*model.AIModel, error) {
	m := &model.AIModel{}
	result := s.db.WithContext(ctx).
		Preload("Organization").
		Preload("Tags").
		First(m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m, nil
}

func (s *ModelRepoImpl) GetModelBySlug(ctx context.Context, slug string) (*model.AIModel, error) {
	m := &model.AIModel{}
	result := s.db.WithContext(ctx).
		Preload("Organization").
		Preload("Tags").
		Where("model_slug = ?", slug).
		First(m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m, nil
}

func (s *ModelRepoImpl) GetModelByIDs(ctx context.Context, ids []uint64) ([]*model.AIModel, error) {
	models := make([]*model.AIModel, 0)
	result := s.db.WithContext(ctx).
		Preload("Organization").
		Preload("Tags").
		Where("id IN ?", ids).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return models, nil
}

func (s *ModelRepoImpl) applyFilter(query *gorm.DB, filter ModelFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("ai_models.model_status = ?", filter.Status)
	}
	if filter.Pricing != "" {
		query = query.Where("ai_models.pricing_type = ?", filter.Pricing)
	}
	if filter.Category != "" {
		query = query.Where("ai_models.model_category = ?", filter.Category)
	}
	if filter.OrganizationID != 0 {
		query = query.Where("ai_models.organization_id = ?", filter.OrganizationID)
	}
	if filter.FeaturedOnly {
		query = query.Where("ai_models.is_featured = ?", true)
	}
	if filter.TagSlug != "" {
		query = query.
			Joins("JOIN ai_model_tags ON ai_model_tags.ai_model_id = ai_models.id").
			Joins("JOIN tags ON tags.id = ai_model_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("ai_models.model_name LIKE ? OR ai_models.model_description LIKE ?", pattern, pattern)
	}
	return query
}

func (s *ModelRepoImpl) ListModels(ctx context.Context, filter ModelFilter, limit, offset int) ([]*model.AIModel, int64, error) {
	var total int64
	countQuery := s.applyFilter(s.db.WithContext(ctx).Model(&model.AIModel{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	models := make([]*model.AIModel, 0)
	query := s.applyFilter(s.db.WithContext(ctx).Model(&model.AIModel{}), filter)
	result := query.
		Preload("Organization").
		Preload("Tags").
		Order("ai_models.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return models, total, nil
}

func (s *ModelRepoImpl) ListActiveModelIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.AIModel{}).
		Where("model_status = ?", consts.ModelStatusActive).
		Pluck("id", &ids).Error
	return ids, err
}

func (s *ModelRepoImpl) GetTrendingModels(ctx context.Context, limit int) ([]*model.AIModel, error) {
	models := make([]*model.AIModel, 0)
	result := s.db.WithContext(ctx).
		Preload("Organization").
		Preload("Tags").
		Where("model_status = ?", consts.ModelStatusActive).
		Order("like_count DESC, view_count DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return models, nil
}

// CreateModel inserts the model, attaches its tags and bumps the
// owning organization's total in one transaction.
func (s *ModelRepoImpl) CreateModel(ctx context.Context, m *model.AIModel, tags []*model.Tag) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit("Organization", "Tags").Create(m); result.Error != nil {
			return result.Error
		}

		for _, tag := range tags {
			link := &model.AIModelTag{AIModelID: m.ID, TagID: tag.ID}
			if result := tx.Create(link); result.Error != nil {
				return result.Error
			}
		}

		return tx.Model(&model.Organization{}).
			Where("id = ?", m.OrganizationID).
			Update("total_models", gorm.Expr("total_models + 1")).Error
	})
}

func (s *ModelRepoImpl) UpdateModel(ctx context.Context, m *model.AIModel) error {
	return s.db.WithContext(ctx).
		Model(&model.AIModel{}).
		Omit("Organization", "Tags").
		Where("id = ?", m.ID).
		Updates(m).Error
}

func (s *ModelRepoImpl) ReplaceModelTags(ctx context.Context, modelID uint64, tags []*model.Tag) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("ai_model_id = ?", modelID).Delete(&model.AIModelTag{}); result.Error != nil {
			return result.Error
		}
		for _, tag := range tags {
			link := &model.AIModelTag{AIModelID: modelID, TagID: tag.ID}
			if result := tx.Create(link); result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

func (s *ModelRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.AIModel{}).
		Where("id = ?", id).
		Update("model_status", status)
	return result.RowsAffected, result.Error
}

func (s *ModelRepoImpl) UpdateFeatured(ctx context.Context, id uint64, featured bool) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.AIModel{}).
		Where("id = ?", id).
		Update("is_featured", featured)
	return result.RowsAffected, result.Error
}

func (s *ModelRepoImpl) UpdateImageURL(ctx context.Context, id uint64, imageURL string) error {
	return s.db.WithContext(ctx).
		Model(&model.AIModel{}).
		Where("id = ?", id).
		Update("model_image_url", imageURL).Error
}

func (s *ModelRepoImpl) IncrementViewCount(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.AIModel{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// SetEngagementCounters overwrites the denormalized counters with
// values recounted from the fact tables.
func (s *ModelRepoImpl) SetEngagementCounters(ctx context.Context, id uint64, likeCount, commentCount, ratingCount int64, averageRating *float64) error {
	return s.db.WithContext(ctx).
		Model(&model.AIModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"like_count":     likeCount,
			"comment_count":  commentCount,
			"rating_count":   ratingCount,
			"average_rating": averageRating,
		}).Error
}

func (s *ModelRepoImpl) DeleteModel(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := &model.AIModel{}
		if result := tx.First(m, id); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("ai_model_id = ?", id).Delete(&model.AIModelTag{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("ai_model_id = ?", id).Delete(&model.ModelLike{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("ai_model_id = ?", id).Delete(&model.ModelRating{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("ai_model_id = ?", id).Delete(&model.ModelComment{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Delete(&model.AIModel{}, id); result.Error != nil {
			return result.Error
		}

		return tx.Model(&model.Organization{}).
			Where("id = ? AND total_models > 0", m.OrganizationID).
			Update("total_models", gorm.Expr("total_models - 1")).Error
	})
}
