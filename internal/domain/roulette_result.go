package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RouletteCandidate is the per-restaurant snapshot captured at draw time
type RouletteCandidate struct {
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	VoteCount      int       `json:"vote_count"`
	Probability    float64   `json:"probability"`
}

// RouletteResult is the permanent audit record of a roulette draw.
// It is written once by the finalize update and never modified.
type RouletteResult struct {
	RandomValue          float64             `json:"random_value"`
	Candidates           []RouletteCandidate `json:"candidates"`
	SelectedRestaurantID uuid.UUID           `json:"selected_restaurant_id"`
}

// ToJSON serializes the result for the meetings.roulette_result jsonb column
func (r *RouletteResult) ToJSON() (datatypes.JSON, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roulette result: %w", err)
	}
	return datatypes.JSON(data), nil
}

// RouletteResultFromJSON parses a stored roulette_result column value
func RouletteResultFromJSON(data datatypes.JSON) (*RouletteResult, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result RouletteResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roulette result: %w", err)
	}
	return &result, nil
}
