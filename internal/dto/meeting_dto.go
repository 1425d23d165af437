package dto

import (
	"time"

	"github.com/google/uuid"

	"meeting-roulette-api/internal/domain"
)

// CreateMeetingRequest represents the request to create a meeting
// @Description fixed 타입은 selectedRestaurantId 필수, roulette 타입은 candidateIds 2개 이상 필수
type CreateMeetingRequest struct {
	Date                 string      `json:"date" binding:"required" example:"2025-06-29"`
	Time                 string      `json:"time" binding:"required" example:"18:30:00"`
	Type                 string      `json:"type" binding:"required,oneof=fixed roulette" example:"roulette"`
	SelectedRestaurantID *uuid.UUID  `json:"selectedRestaurantId,omitempty"`
	CandidateIDs         []uuid.UUID `json:"candidateIds,omitempty"`
}

// CandidateResponse represents one roulette candidate with its live tally
type CandidateResponse struct {
	RestaurantID   uuid.UUID `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	Category       string    `json:"category,omitempty"`
	VoteCount      int       `json:"voteCount"`
}

// MeetingResponse represents a meeting in list and detail views
type MeetingResponse struct {
	ID                     uuid.UUID              `json:"id"`
	HostID                 uuid.UUID              `json:"hostId"`
	HostNickname           string                 `json:"hostNickname,omitempty"`
	Date                   string                 `json:"date" example:"2025-06-29"`
	Time                   string                 `json:"time" example:"18:30:00"`
	Week                   int                    `json:"week"`
	Type                   domain.MeetingType     `json:"type"`
	Status                 domain.MeetingStatus   `json:"status"`
	SelectedRestaurantID   *uuid.UUID             `json:"selectedRestaurantId,omitempty"`
	SelectedRestaurantName string                 `json:"selectedRestaurantName,omitempty"`
	RouletteResult         *domain.RouletteResult `json:"rouletteResult,omitempty"`
	RouletteSpunAt         *time.Time             `json:"rouletteSpunAt,omitempty"`
	ParticipantCount       int                    `json:"participantCount"`
	VoteCount              int                    `json:"voteCount"`
	CreatedAt              time.Time              `json:"createdAt"`
}

// MeetingDetailResponse adds candidates and membership info to a meeting
type MeetingDetailResponse struct {
	MeetingResponse
	Candidates      []CandidateResponse `json:"candidates,omitempty"`
	Participants    []uuid.UUID         `json:"participants"`
	IsParticipating bool                `json:"isParticipating"`
	IsHosting       bool                `json:"isHosting"`
	MyVote          *uuid.UUID          `json:"myVote,omitempty"`
}

// MyMeetingsResponse represents the current user's hosted and joined meetings
type MyMeetingsResponse struct {
	Hosted        []*MeetingResponse `json:"hosted"`
	Participating []*MeetingResponse `json:"participating"`
	CanCreate     bool               `json:"canCreate"`
}

// SpinResponse represents the outcome of a roulette draw
type SpinResponse struct {
	MeetingID              uuid.UUID             `json:"meetingId"`
	Result                 domain.RouletteResult `json:"result"`
	SelectedRestaurantName string                `json:"selectedRestaurantName,omitempty"`
}
