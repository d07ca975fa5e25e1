package dto

import "time"

// ModelCreateDTO is the model contribution request.
type ModelCreateDTO struct {
	ModelName        string   `json:"modelName" binding:"required,min=1,max=100"`
	ModelSlug        string   `json:"modelSlug" binding:"required,min=1,max=100"`
	ModelDescription *string  `json:"modelDescription" binding:"omitempty,max=2000"`
	ModelVersion     string   `json:"modelVersion" binding:"required,max=50"`
	ModelCategory    string   `json:"modelCategory" binding:"required,max=50"`
	PricingType      string   `json:"pricingType" binding:"required,oneof=FREE FREEMIUM PAID SUBSCRIPTION"`
	ModelPrice       *float64 `json:"modelPrice" binding:"omitempty,gte=0"`
	Currency         *string  `json:"currency" binding:"omitempty,max=10"`
	PricingUnit      *string  `json:"pricingUnit" binding:"omitempty,max=100"`
	ApiURL           *string  `json:"apiUrl" binding:"omitempty,url,max=255"`
	DocumentationURL *string  `json:"documentationUrl" binding:"omitempty,url,max=255"`
	ModelImageURL    *string  `json:"modelImageUrl" binding:"omitempty,max=255"`
	OrganizationID   uint64   `json:"organizationId" binding:"required"`
	TagNames         []string `json:"tagNames" binding:"omitempty,max=20,dive,min=1,max=50"`
}

// ModelUpdateDTO updates mutable model fields.
type ModelUpdateDTO struct {
	ModelDescription *string  `json:"modelDescription" binding:"omitempty,max=2000"`
	ModelVersion     *string  `json:"modelVersion" binding:"omitempty,max=50"`
	ModelCategory    *string  `json:"modelCategory" binding:"omitempty,max=50"`
	PricingType      *string  `json:"pricingType" binding:"omitempty,oneof=FREE FREEMIUM PAID SUBSCRIPTION"`
	ModelPrice       *float64 `json:"modelPrice" binding:"omitempty,gte=0"`
	Currency         *string  `json:"currency" binding:"omitempty,max=10"`
	PricingUnit      *string  `json:"pricingUnit" binding:"omitempty,max=100"`
	ApiURL           *string  `json:"apiUrl" binding:"omitempty,url,max=255"`
	DocumentationURL *string  `json:"documentationUrl" binding:"omitempty,url,max=255"`
	ModelImageURL    *string  `json:"modelImageUrl" binding:"omitempty,max=255"`
}

// ModelDTO is the model projection including its denormalized counters.
type ModelDTO struct {
	ID               uint64    `json:"id"`
	ModelName        string    `json:"modelName"`
	ModelSlug        string    `json:"modelSlug"`
	ModelDescription *string   `json:"modelDescription"`
	ModelVersion     string    `json:"modelVersion"`
	ModelCategory    string    `json:"modelCategory"`
	PricingType      string    `json:"pricingType"`
	ModelPrice       *float64  `json:"modelPrice"`
	Currency         string    `json:"currency"`
	PricingUnit      *string   `json:"pricingUnit"`
	ApiURL           *string   `json:"apiUrl"`
	DocumentationURL *string   `json:"documentationUrl"`
	ModelImageURL    *string   `json:"modelImageUrl"`
	ModelStatus      string    `json:"modelStatus"`
	IsFeatured       bool      `json:"isFeatured"`
	LikeCount        int       `json:"likeCount"`
	CommentCount     int       `json:"commentCount"`
	ViewCount        int64     `json:"viewCount"`
	AverageRating    *float64  `json:"averageRating"`
	RatingCount      int       `json:"ratingCount"`
	OrganizationID   uint64    `json:"organizationId"`
	OrganizationName string    `json:"organizationName,omitempty"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ModelStatusDTO updates the lifecycle state (admin only).
type ModelStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=PENDING_APPROVAL ACTIVE INACTIVE DEPRECATED"`
}

// ModelFeatureDTO toggles the featured flag (admin only).
type ModelFeatureDTO struct {
	Featured bool `json:"featured"`
}

// ModelMetadataDTO is the prefill extracted from a documentation page.
type ModelMetadataDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SiteName    string `json:"siteName"`
}
