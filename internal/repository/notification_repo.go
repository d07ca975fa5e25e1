package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pramanandasarkar02/toolsai/internal/model"
)

type NotificationRepo interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	GetNotificationByID(ctx context.Context, id uint64) (*model.Notification, error)
	GetNotificationsByReceiver(ctx context.Context, receiverID uint64, unreadOnly bool, limit, offset int) ([]*model.Notification, int64, error)
	CountUnread(ctx context.Context, receiverID uint64) (int64, error)
	MarkRead(ctx context.Context, id, receiverID uint64) (int64, error)
	MarkAllRead(ctx context.Context, receiverID uint64) (int64, error)
	DeleteNotification(ctx context.Context, id, receiverID uint64) (int64, error)
}

type NotificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &NotificationRepoImpl{db: db}
}

func (s *NotificationRepoImpl) CreateNotification(ctx context.Context, n *model.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *NotificationRepoImpl) GetNotificationByID(ctx context.Context, id uint64) (*model.Notification, error) {
	n := &model.Notification{}
	result := s.db.WithContext(ctx).First(n, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return n, nil
}

func (s *NotificationRepoImpl) GetNotificationsByReceiver(ctx context.Context, receiverID uint64, unreadOnly bool, limit, offset int) ([]*model.Notification, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("receiver_id = ?", receiverID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]*model.Notification, 0)
	result := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return notifications, total, nil
}

func (s *NotificationRepoImpl) CountUnread(ctx context.Context, receiverID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}

func (s *NotificationRepoImpl) MarkRead(ctx context.Context, id, receiverID uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (s *NotificationRepoImpl) MarkAllRead(ctx context.Context, receiverID uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (s *NotificationRepoImpl) DeleteNotification(ctx context.Context, id, receiverID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Delete(&model.Notification{})
	return result.RowsAffected, result.Error
}
