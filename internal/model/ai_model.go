package model

import (
	"time"
)

// AIModel carries the denormalized engagement counters (LikeCount,
// CommentCount, RatingCount, AverageRating, ViewCount). They are maintained
// by the engagement services inside the same transaction as the fact rows and
// reconciled daily against the fact tables.
type AIModel struct {
	ID               uint64   `gorm:"primaryKey"`
	ModelName        string   `gorm:"type:varchar(100);not null" json:"modelName"`
	ModelSlug        string   `gorm:"type:varchar(100);not null;uniqueIndex:idx_model_slug" json:"modelSlug"`
	ModelDescription *string  `gorm:"type:varchar(2000)" json:"modelDescription"`
	ModelVersion     string   `gorm:"type:varchar(50);not null" json:"modelVersion"`
	ModelCategory    string   `gorm:"type:varchar(50);not null;index:idx_category" json:"modelCategory"`
	PricingType      string   `gorm:"type:varchar(20);not null" json:"pricingType"`
	ModelPrice       *float64 `gorm:"type:decimal(10,2)" json:"modelPrice"`
	Currency         string   `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	PricingUnit      *string  `gorm:"type:varchar(100)" json:"pricingUnit"`
	ApiURL           *string  `gorm:"type:varchar(255)" json:"apiUrl"`
	DocumentationURL *string  `gorm:"type:varchar(255)" json:"documentationUrl"`
	ModelImageURL    *string  `gorm:"type:varchar(255)" json:"modelImageUrl"`
	ModelStatus      string   `gorm:"type:varchar(30);not null;default:'PENDING_APPROVAL';index:idx_status" json:"modelStatus"`
	IsFeatured       bool     `gorm:"type:tinyint(1);not null;default:0" json:"isFeatured"`

	LikeCount     int      `gorm:"not null;default:0" json:"likeCount"`
	CommentCount  int      `gorm:"not null;default:0" json:"commentCount"`
	ViewCount     int64    `gorm:"not null;default:0" json:"viewCount"`
	AverageRating *float64 `gorm:"type:decimal(3,2)" json:"averageRating"`
	RatingCount   int      `gorm:"not null;default:0" json:"ratingCount"`

	OrganizationID uint64 `gorm:"not null;index:idx_org_id" json:"organizationId"`
	ContributorID  uint64 `gorm:"not null;index:idx_contributor_id" json:"contributorId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Organization Organization `gorm:"foreignKey:OrganizationID;references:ID"`
	Tags         []Tag        `gorm:"many2many:ai_model_tags;joinForeignKey:AIModelID;joinReferences:TagID"`
}

func (AIModel) TableName() string {
	return "ai_models"
}
