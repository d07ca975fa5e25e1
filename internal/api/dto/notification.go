package dto

import "time"

// NotificationDTO is the notification projection.
type NotificationDTO struct {
	ID         uint64    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	ReceiverID uint64    `json:"receiverId"`
	SenderID   *uint64   `json:"senderId"`
	TargetID   uint64    `json:"targetId"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UnreadCountDTO wraps the unread badge value.
type UnreadCountDTO struct {
	Count int64 `json:"count"`
}
