package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pramanandasarkar02/toolsai/internal/model"
)

// TagUsage pairs a tag with how many models carry it.
type TagUsage struct {
	model.Tag
	ModelCount int64
}

type TagRepo interface {
	GetTagByID(ctx context.Context, id uint64) (*model.Tag, error)
	GetTagByName(ctx context.Context, name string) (*model.Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error)
	GetOrCreateTag(ctx context.Context, name, slug string) (*model.Tag, error)
	GetTagsByNames(ctx context.Context, names []string) ([]*model.Tag, error)
	ListTagsWithUsage(ctx context.Context, keyword string, limit, offset int) ([]*TagUsage, int64, error)
}

type TagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) TagRepo {
	return &TagRepoImpl{db: db}
}

func (s *TagRepoImpl) GetTagByID(ctx context.Context, id uint64) (*model.Tag, error) {
	tag := &model.Tag{}
	result := s.db.WithContext(ctx).First(tag, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tag, nil
}

func (s *TagRepoImpl) GetTagByName(ctx context.Context, name string) (*model.Tag, error) {
	tag := &model.Tag{}
	result := s.db.WithContext(ctx).
		Where("name = ?", name).
		First(tag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tag, nil
}

func (s *TagRepoImpl) GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	tag := &model.Tag{}
	result := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(tag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tag, nil
}

// GetOrCreateTag returns the existing tag for name or inserts a new one.
// The unique index on name resolves concurrent creates; on a duplicate
// key error the row is reread.
func (s *TagRepoImpl) GetOrCreateTag(ctx context.Context, name, slug string) (*model.Tag, error) {
	tag := &model.Tag{Name: name, Slug: slug}
	err := s.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(tag).Error
	if err != nil {
		existing, getErr := s.GetTagByName(ctx, name)
		if getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagRepoImpl) GetTagsByNames(ctx context.Context, names []string) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	result := s.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}
	return tags, nil
}

func (s *TagRepoImpl) ListTagsWithUsage(ctx context.Context, keyword string, limit, offset int) ([]*TagUsage, int64, error) {
	countQuery := s.db.WithContext(ctx).Model(&model.Tag{})
	if keyword != "" {
		countQuery = countQuery.Where("tags.name LIKE ?", "%"+keyword+"%")
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := s.db.WithContext(ctx).Model(&model.Tag{})
	if keyword != "" {
		query = query.Where("tags.name LIKE ?", "%"+keyword+"%")
	}

	usages := make([]*TagUsage, 0)
	err := query.
		Select("tags.*, COUNT(ai_model_tags.ai_model_id) AS model_count").
		Joins("LEFT JOIN ai_model_tags ON ai_model_tags.tag_id = tags.id").
		Group("tags.id").
		Order("model_count DESC, tags.name ASC").
		Limit(limit).Offset(offset).
		Scan(&usages).Error
	if err != nil {
		return nil, 0, err
	}
	return usages, total, nil
}
