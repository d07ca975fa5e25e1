package dto

import "time"

// RegisterDTO is the user registration request.
type RegisterDTO struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email,max=100"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	FullName string  `json:"fullName" binding:"max=100"`
	Bio      *string `json:"bio" binding:"omitempty,max=500"`
}

// CredentialDTO is the login request.
type CredentialDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResultDTO carries the issued token alongside the profile.
type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// UserUpdateDTO updates mutable profile fields.
type UserUpdateDTO struct {
	FullName *string `json:"fullName" binding:"omitempty,max=100"`
	Bio      *string `json:"bio" binding:"omitempty,max=500"`
}

// ApiKeyCreateDTO requests a new API key.
type ApiKeyCreateDTO struct {
	KeyName   string     `json:"keyName" binding:"required,min=1,max=100"`
	ExpiresAt *time.Time `json:"expiresAt" binding:"omitempty"`
}

// ApiKeyDTO is the API key projection. KeyValue is only populated in
// the creation response; it is never returned again.
type ApiKeyDTO struct {
	ID         uint64     `json:"id"`
	KeyName    string     `json:"keyName"`
	KeyValue   string     `json:"keyValue,omitempty"`
	IsActive   bool       `json:"isActive"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// UserDTO is the public user projection.
type UserDTO struct {
	ID          uint64     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Bio         *string    `json:"bio"`
	AvatarURL   *string    `json:"avatarUrl"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	IsVerified  bool       `json:"isVerified"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}
