// Package roulette implements the weighted candidate aggregation and the
// cumulative-walk draw used to finalize roulette meetings.
package roulette

import (
	"errors"

	"github.com/google/uuid"

	"meeting-roulette-api/internal/domain"
)

// Epsilon is the weight floor for unvoted candidates. Every candidate keeps a
// strictly positive probability so an unvoted restaurant can still win.
const Epsilon = 1e-6

var (
	// ErrInvalidCandidateSet is returned when fewer than two candidates are supplied
	ErrInvalidCandidateSet = errors.New("roulette requires at least two candidates")
	// ErrNoCandidates is returned when a draw is attempted against an empty distribution
	ErrNoCandidates = errors.New("no candidates to draw from")
)

// Entry is one candidate restaurant in meeting display order
type Entry struct {
	RestaurantID   uuid.UUID
	RestaurantName string
}

// Aggregate turns the candidate list and the live ballots (user -> restaurant)
// into a normalized distribution. Candidate order is preserved: the same
// (entries, ballots) input always yields the same ordered output, which keeps
// draws reproducible for a given random value.
func Aggregate(entries []Entry, ballots map[uuid.UUID]uuid.UUID) ([]domain.RouletteCandidate, error) {
	if len(entries) < 2 {
		return nil, ErrInvalidCandidateSet
	}

	tally := make(map[uuid.UUID]int, len(entries))
	for _, restaurantID := range ballots {
		tally[restaurantID]++
	}

	totalWeight := 0.0
	weights := make([]float64, len(entries))
	candidates := make([]domain.RouletteCandidate, len(entries))
	for i, entry := range entries {
		votes := tally[entry.RestaurantID]
		weight := float64(votes)
		if weight < Epsilon {
			weight = Epsilon
		}
		weights[i] = weight
		totalWeight += weight
		candidates[i] = domain.RouletteCandidate{
			RestaurantID:   entry.RestaurantID,
			RestaurantName: entry.RestaurantName,
			VoteCount:      votes,
		}
	}

	for i := range candidates {
		candidates[i].Probability = weights[i] / totalWeight
	}

	return candidates, nil
}

// Pick walks the cumulative distribution in candidate order and selects the
// first candidate whose cumulative probability exceeds r, for r in [0,1).
// r=0 therefore selects the first candidate; floating point residue at the top
// of the range falls through to the last candidate.
func Pick(candidates []domain.RouletteCandidate, r float64) (domain.RouletteCandidate, error) {
	if len(candidates) == 0 {
		return domain.RouletteCandidate{}, ErrNoCandidates
	}

	cumulative := 0.0
	for _, candidate := range candidates {
		cumulative += candidate.Probability
		if r < cumulative {
			return candidate, nil
		}
	}

	return candidates[len(candidates)-1], nil
}
