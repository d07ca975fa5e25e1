package model

import (
	"time"
)

// ModelRating is a rating fact row, one per (user, model) enforced by a
// composite unique key.
type ModelRating struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_model" json:"userId"`
	AIModelID uint64    `gorm:"not null;uniqueIndex:idx_user_model;index:idx_model_id;column:ai_model_id" json:"modelId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Review    *string   `gorm:"type:varchar(2000)" json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ModelRating) TableName() string {
	return "ai_model_ratings"
}
