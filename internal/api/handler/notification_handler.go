package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: notificationSvc,
	}
}

// GetNotifications pages the caller's notifications, newest first.
func (s *NotificationHandler) GetNotifications(c *gin.Context) {
	page, pageSize := pageParams(c)
	unreadOnly := c.Query("unreadOnly") == "true"

	result, err := s.notificationSvc.GetNotifications(c.Request.Context(), c.GetUint64("user_id"), unreadOnly, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetUnreadCount returns the unread badge value.
func (s *NotificationHandler) GetUnreadCount(c *gin.Context) {
	count, err := s.notificationSvc.GetUnreadCount(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, count)
}

// MarkRead marks a single notification as read.
func (s *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID := pathID(c, "notification_id")
	if notificationID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.notificationSvc.MarkRead(c.Request.Context(), c.GetUint64("user_id"), notificationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkAllRead clears the caller's unread backlog.
func (s *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := s.notificationSvc.MarkAllRead(c.Request.Context(), c.GetUint64("user_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteNotification removes one of the caller's notifications.
func (s *NotificationHandler) DeleteNotification(c *gin.Context) {
	notificationID := pathID(c, "notification_id")
	if notificationID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.notificationSvc.DeleteNotification(c.Request.Context(), c.GetUint64("user_id"), notificationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
