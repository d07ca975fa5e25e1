package service

import (
	"context"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

type NotificationService interface {
	GetNotifications(ctx context.Context, receiverID uint64, unreadOnly bool, page, pageSize int) (*dto.PageResponse, error)
	GetUnreadCount(ctx context.Context, receiverID uint64) (*dto.UnreadCountDTO, error)
	MarkRead(ctx context.Context, receiverID, notificationID uint64) error
	MarkAllRead(ctx context.Context, receiverID uint64) error
	DeleteNotification(ctx context.Context, receiverID, notificationID uint64) error
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
}

func NewNotificationService(notificationRepo repository.NotificationRepo) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *notificationServiceImpl) GetNotifications(ctx context.Context, receiverID uint64, unreadOnly bool, page, pageSize int) (*dto.PageResponse, error) {
	offset := (page - 1) * pageSize
	notifications, total, err := s.notificationRepo.GetNotificationsByReceiver(ctx, receiverID, unreadOnly, pageSize, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		list = append(list, toNotificationDTO(n))
	}
	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, receiverID uint64) (*dto.UnreadCountDTO, error) {
	count, err := s.notificationRepo.CountUnread(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountDTO{Count: count}, nil
}

// MarkRead only touches rows owned by the receiver; a miss means the
// notification does not exist or belongs to someone else.
func (s *notificationServiceImpl) MarkRead(ctx context.Context, receiverID, notificationID uint64) error {
	rows, err := s.notificationRepo.MarkRead(ctx, notificationID, receiverID)
	if err != nil {
		return err
	}
	if rows == 0 {
		n, err := s.notificationRepo.GetNotificationByID(ctx, notificationID)
		if err != nil {
			return err
		}
		if n == nil {
			return ErrNotificationMissing
		}
		if n.ReceiverID != receiverID {
			return ErrNotNotificationOwner
		}
		// Already read.
	}
	return nil
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, receiverID uint64) error {
	_, err := s.notificationRepo.MarkAllRead(ctx, receiverID)
	return err
}

func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, receiverID, notificationID uint64) error {
	rows, err := s.notificationRepo.DeleteNotification(ctx, notificationID, receiverID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotificationMissing
	}
	return nil
}

func toNotificationDTO(n *model.Notification) *dto.NotificationDTO {
	return &dto.NotificationDTO{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		ReceiverID: n.ReceiverID,
		SenderID:   n.SenderID,
		TargetID:   n.TargetID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}
