package model

import (
	"time"
)

type Organization struct {
	ID          uint64  `gorm:"primaryKey"`
	OrgName     string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_org_name"`
	OrgURL      string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_org_url"`
	Description *string `gorm:"type:varchar(1000)"`
	OrgSecret   *string `gorm:"type:varchar(255)"`
	TotalModels int     `gorm:"not null;default:0"`
	IsActive    bool    `gorm:"type:tinyint(1);not null;default:1"`
	JoinedAt    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Organization) TableName() string {
	return "organizations"
}
