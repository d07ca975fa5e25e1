package model

import (
	"time"
)

// UserOrgSubscription records a user following an organization's releases.
type UserOrgSubscription struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         uint64    `gorm:"not null;uniqueIndex:idx_user_org" json:"userId"`
	OrganizationID uint64    `gorm:"not null;uniqueIndex:idx_user_org;index:idx_org_id" json:"organizationId"`
	Status         string    `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (UserOrgSubscription) TableName() string {
	return "user_organization_subscriptions"
}
