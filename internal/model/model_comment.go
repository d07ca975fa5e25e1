package model

import (
	"time"
)

// ModelComment is a comment fact row. Deletion is a soft flag so that reply
// chains stay resolvable; ParentCommentID of 0 marks a top-level comment.
type ModelComment struct {
	ID              uint64    `gorm:"primaryKey"`
	AIModelID       uint64    `gorm:"not null;index:idx_model_id;column:ai_model_id" json:"modelId"`
	UserID          uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Content         string    `gorm:"type:varchar(2000);not null" json:"content"`
	ParentCommentID uint64    `gorm:"not null;default:0;index:idx_parent_id" json:"parentCommentId"`
	UpvoteCount     int       `gorm:"not null;default:0" json:"upvoteCount"`
	DownvoteCount   int       `gorm:"not null;default:0" json:"downvoteCount"`
	IsEdited        bool      `gorm:"type:tinyint(1);not null;default:0" json:"isEdited"`
	IsDeleted       bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (ModelComment) TableName() string {
	return "ai_model_comments"
}
