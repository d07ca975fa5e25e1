package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pramanandasarkar02/toolsai/internal/model"
)

type SubscriptionRepo interface {
	CreateSubscription(ctx context.Context, sub *model.UserOrgSubscription) error
	DeleteSubscription(ctx context.Context, userID, orgID uint64) (int64, error)
	CheckSubscriptionExists(ctx context.Context, userID, orgID uint64) (bool, error)
	GetSubscribedOrgIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetSubscriberIDs(ctx context.Context, orgID uint64) ([]uint64, error)
	CountByOrg(ctx context.Context, orgID uint64) (int64, error)
}

type SubscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) SubscriptionRepo {
	return &SubscriptionRepoImpl{db: db}
}

func (s *SubscriptionRepoImpl) CreateSubscription(ctx context.Context, sub *model.UserOrgSubscription) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *SubscriptionRepoImpl) DeleteSubscription(ctx context.Context, userID, orgID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		Delete(&model.UserOrgSubscription{})
	return result.RowsAffected, result.Error
}

func (s *SubscriptionRepoImpl) CheckSubscriptionExists(ctx context.Context, userID, orgID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserOrgSubscription{}).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		Count(&count).Error
	return count > 0, err
}

func (s *SubscriptionRepoImpl) GetSubscribedOrgIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var orgIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.UserOrgSubscription{}).
		Where("user_id = ?", userID).
		Pluck("organization_id", &orgIDs).Error
	return orgIDs, err
}

func (s *SubscriptionRepoImpl) GetSubscriberIDs(ctx context.Context, orgID uint64) ([]uint64, error) {
	var userIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.UserOrgSubscription{}).
		Where("organization_id = ?", orgID).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

func (s *SubscriptionRepoImpl) CountByOrg(ctx context.Context, orgID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserOrgSubscription{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}
