package model

import (
	"time"
)

type User struct {
	ID                uint64     `gorm:"primaryKey"`
	Username          string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Email             string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_email"`
	Password          string     `gorm:"type:varchar(255);not null"`
	FullName          string     `gorm:"type:varchar(100)"`
	Bio               *string    `gorm:"type:varchar(500)"`
	AvatarURL         *string    `gorm:"type:varchar(255)"`
	Role              string     `gorm:"type:varchar(20);not null;default:'USER'"`
	IsActive          bool       `gorm:"type:tinyint(1);not null;default:1"`
	IsVerified        bool       `gorm:"type:tinyint(1);not null;default:0"`
	VerificationToken *string    `gorm:"type:varchar(64);index:idx_verification_token"`
	LastLoginAt       *time.Time `gorm:"column:last_login_at"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (User) TableName() string {
	return "users"
}
