package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateRestaurantRequest represents the request to register a restaurant
type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required,max=255" example:"순이"`
	Category    string `json:"category" binding:"max=100" example:"면류"`
	Description string `json:"description" example:"해산물 라멘 전문점"`
	MapURL      string `json:"mapUrl" binding:"omitempty,url"`
}

// RestaurantResponse represents restaurant reference data
type RestaurantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	MapURL      string    `json:"mapUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
