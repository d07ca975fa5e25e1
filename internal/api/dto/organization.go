package dto

import "time"

// OrgCreateDTO is the organization creation request.
type OrgCreateDTO struct {
	OrgName     string  `json:"orgName" binding:"required,min=2,max=100"`
	OrgURL      string  `json:"orgUrl" binding:"required,url,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	OrgSecret   *string `json:"orgSecret" binding:"omitempty,max=255"`
}

// OrgDTO is the organization projection.
type OrgDTO struct {
	ID          uint64    `json:"id"`
	OrgName     string    `json:"orgName"`
	OrgURL      string    `json:"orgUrl"`
	Description *string   `json:"description"`
	TotalModels int       `json:"totalModels"`
	IsActive    bool      `json:"isActive"`
	JoinedAt    time.Time `json:"joinedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
