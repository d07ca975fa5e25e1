package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pramanandasarkar02/toolsai/internal/model"
)

type ApiKeyRepo interface {
	CreateApiKey(ctx context.Context, key *model.ApiKey) error
	GetActiveByValue(ctx context.Context, value string) (*model.ApiKey, error)
	GetApiKeysByUser(ctx context.Context, userID uint64) ([]*model.ApiKey, error)
	Deactivate(ctx context.Context, id, userID uint64) (int64, error)
	TouchLastUsed(ctx context.Context, id uint64, at time.Time) error
}

type ApiKeyRepoImpl struct {
	db *gorm.DB
}

func NewApiKeyRepo(db *gorm.DB) ApiKeyRepo {
	return &ApiKeyRepoImpl{db: db}
}

func (s *ApiKeyRepoImpl) CreateApiKey(ctx context.Context, key *model.ApiKey) error {
	return s.db.WithContext(ctx).Create(key).Error
}

func (s *ApiKeyRepoImpl) GetActiveByValue(ctx context.Context, value string) (*model.ApiKey, error) {
	key := &model.ApiKey{}
	result := s.db.WithContext(ctx).
		Where("key_value = ? AND is_active = ?", value, true).
		First(key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return key, nil
}

func (s *ApiKeyRepoImpl) GetApiKeysByUser(ctx context.Context, userID uint64) ([]*model.ApiKey, error) {
	keys := make([]*model.ApiKey, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&keys)
	if result.Error != nil {
		return nil, result.Error
	}
	return keys, nil
}

func (s *ApiKeyRepoImpl) Deactivate(ctx context.Context, id, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.ApiKey{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (s *ApiKeyRepoImpl) TouchLastUsed(ctx context.Context, id uint64, at time.Time) error {
	return s.db.WithContext(ctx).Model(&model.ApiKey{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
}
