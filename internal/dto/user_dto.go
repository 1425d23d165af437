package dto

import (
	"time"

	"github.com/google/uuid"
)

// SignUpRequest represents the request to create an account
type SignUpRequest struct {
	Nickname    string `json:"nickname" binding:"required,min=2,max=50"`
	Password    string `json:"password" binding:"required,min=4,max=72"`
	ProfileIcon string `json:"profileIcon" binding:"max=20" example:"🍜"`
}

// LoginRequest represents the request to start a session
type LoginRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents profile changes for the current user
type UpdateProfileRequest struct {
	ProfileIcon string `json:"profileIcon" binding:"max=20"`
}

// UserResponse represents a user's public profile
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Nickname    string    `json:"nickname"`
	ProfileIcon string    `json:"profileIcon,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse represents a successful signup/login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
