package model

import (
	"time"
)

type ApiKey struct {
	ID         uint64     `gorm:"primaryKey" json:"id"`
	UserID     uint64     `gorm:"not null;index:idx_user_id" json:"userId"`
	KeyName    string     `gorm:"type:varchar(100);not null" json:"keyName"`
	KeyValue   string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_key_value" json:"-"`
	IsActive   bool       `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}
