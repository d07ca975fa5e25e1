package es

import "time"

// ModelES is the search document for a catalog model.
type ModelES struct {
	ID               uint64    `json:"id"`
	ModelName        string    `json:"model_name"`
	ModelSlug        string    `json:"model_slug"`
	Description      string    `json:"description"`
	ModelStatus      string    `json:"model_status"`
	Pricing          string    `json:"pricing"`
	OrganizationID   uint64    `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	Tags             []string  `json:"tags"`
	IsFeatured       bool      `json:"is_featured"`
	LikeCount        int64     `json:"like_count"`
	ViewCount        int64     `json:"view_count"`
	AverageRating    *float64  `json:"average_rating,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
