package model

import (
	"time"
)

// ModelLike is a like fact row. The composite primary key doubles as the
// storage-level uniqueness guarantee for one like per (user, model).
type ModelLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	AIModelID uint64    `gorm:"primaryKey;index:idx_model_id;column:ai_model_id" json:"modelId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ModelLike) TableName() string {
	return "ai_model_likes"
}
