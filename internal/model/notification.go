package model

import (
	"time"
)

type Notification struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Message    string    `gorm:"type:varchar(1000);not null" json:"message"`
	Type       string    `gorm:"type:varchar(30);not null" json:"type"`
	ReceiverID uint64    `gorm:"not null;index:idx_receiver_id" json:"receiverId"`
	SenderID   *uint64   `json:"senderId"`
	TargetID   uint64    `gorm:"not null;default:0" json:"targetId"`
	IsRead     bool      `gorm:"type:tinyint(1);not null;default:0" json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
