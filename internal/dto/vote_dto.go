package dto

import (
	"time"

	"github.com/google/uuid"
)

// VoteRequest represents a participant's restaurant choice
type VoteRequest struct {
	RestaurantID uuid.UUID `json:"restaurantId" binding:"required"`
}

// VoteResponse represents the stored vote after a (re)vote
type VoteResponse struct {
	MeetingID    uuid.UUID `json:"meetingId"`
	UserID       uuid.UUID `json:"userId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}
