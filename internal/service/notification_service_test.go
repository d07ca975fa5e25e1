package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
)

func seedNotification(repo *fakeNotificationRepo, receiverID uint64, read bool) *model.Notification {
	n := &model.Notification{
		Title:      "New like",
		Message:    "someone liked your model",
		Type:       consts.NotificationTypeLike,
		ReceiverID: receiverID,
		IsRead:     read,
	}
	_ = repo.CreateNotification(context.Background(), n)
	return n
}

func TestGetNotificationsUnreadFilter(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	seedNotification(repo, 1, false)
	seedNotification(repo, 1, true)
	seedNotification(repo, 2, false)

	page, err := svc.GetNotifications(ctx, 1, false, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalItems)

	page, err = svc.GetNotifications(ctx, 1, true, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalItems)
	list := page.Content.([]*dto.NotificationDTO)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsRead)

	count, err := svc.GetUnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
}

func TestMarkReadOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	n := seedNotification(repo, 1, false)

	err := svc.MarkRead(ctx, 2, n.ID)
	assert.ErrorIs(t, err, ErrNotNotificationOwner)

	require.NoError(t, svc.MarkRead(ctx, 1, n.ID))
	// Marking an already read notification succeeds.
	require.NoError(t, svc.MarkRead(ctx, 1, n.ID))

	err = svc.MarkRead(ctx, 1, 9999)
	assert.ErrorIs(t, err, ErrNotificationMissing)
}

func TestMarkAllReadAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	n1 := seedNotification(repo, 1, false)
	seedNotification(repo, 1, false)

	require.NoError(t, svc.MarkAllRead(ctx, 1))
	count, err := svc.GetUnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Count)

	require.NoError(t, svc.DeleteNotification(ctx, 1, n1.ID))
	err = svc.DeleteNotification(ctx, 1, n1.ID)
	assert.ErrorIs(t, err, ErrNotificationMissing)
}
