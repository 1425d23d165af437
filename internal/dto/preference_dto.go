package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpsertPreferenceRequest creates or replaces the caller's preference for a restaurant
type UpsertPreferenceRequest struct {
	RestaurantID uuid.UUID `json:"restaurantId" binding:"required"`
	Score        *float32  `json:"score,omitempty" binding:"omitempty,gte=0,lte=5"`
	Status       string    `json:"status,omitempty" binding:"max=50"`
	Note         string    `json:"note,omitempty"`
}

// PreferenceResponse represents a stored preference
type PreferenceResponse struct {
	ID             uuid.UUID `json:"id"`
	RestaurantID   uuid.UUID `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName,omitempty"`
	Score          *float32  `json:"score,omitempty"`
	Status         string    `json:"status,omitempty"`
	Note           string    `json:"note,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
