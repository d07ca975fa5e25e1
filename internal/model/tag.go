package model

import "time"

type Tag struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_tag_name" json:"name"`
	Slug      string `gorm:"type:varchar(50);not null" json:"slug"`
	CreatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}

// AIModelTag is the join row between models and tags.
type AIModelTag struct {
	AIModelID uint64 `gorm:"primaryKey;column:ai_model_id" json:"modelId"`
	TagID     uint64 `gorm:"primaryKey;index:idx_tag_id" json:"tagId"`
}

func (AIModelTag) TableName() string {
	return "ai_model_tags"
}
