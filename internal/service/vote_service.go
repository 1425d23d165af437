package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/metrics"
	"meeting-roulette-api/internal/repository"
	"meeting-roulette-api/internal/response"
)

// VoteService defines the interface for roulette voting logic
type VoteService interface {
	Vote(ctx context.Context, meetingID, userID, restaurantID uuid.UUID) (*dto.VoteResponse, error)
	GetMyVote(ctx context.Context, meetingID, userID uuid.UUID) (*dto.VoteResponse, error)
}

// voteServiceImpl is the implementation of VoteService
type voteServiceImpl struct {
	voteRepo        repository.VoteRepository
	meetingRepo     repository.MeetingRepository
	participantRepo repository.ParticipantRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewVoteService creates a new instance of VoteService
func NewVoteService(
	voteRepo repository.VoteRepository,
	meetingRepo repository.MeetingRepository,
	participantRepo repository.ParticipantRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) VoteService {
	return &voteServiceImpl{
		voteRepo:        voteRepo,
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		metrics:         m,
		logger:          logger,
	}
}

// Vote records the user's restaurant choice for a recruiting roulette meeting.
// A new vote by the same user replaces the prior one (last-vote-wins).
func (s *voteServiceImpl) Vote(ctx context.Context, meetingID, userID, restaurantID uuid.UUID) (*dto.VoteResponse, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Meeting not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	if meeting.Type != domain.MeetingTypeRoulette {
		return nil, response.NewValidationError("Voting is only available for roulette meetings")
	}
	if !meeting.IsRecruiting() {
		return nil, response.NewAppError(response.ErrCodeMeetingNotRecruiting, "Meeting is not recruiting", "")
	}

	isCandidate := false
	for _, candidate := range meeting.Candidates {
		if candidate.RestaurantID == restaurantID {
			isCandidate = true
			break
		}
	}
	if !isCandidate {
		return nil, response.NewAppError(response.ErrCodeNotACandidate,
			"Restaurant is not a candidate of this meeting", "")
	}

	if _, err := s.participantRepo.FindByMeetingAndUser(ctx, meetingID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotAParticipant,
				"Join the meeting before voting", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify participant", err.Error())
	}

	vote := &domain.Vote{
		MeetingID:    meetingID,
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	if err := s.voteRepo.Replace(ctx, vote); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record vote", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementVoteCast()
	}
	s.logger.Info("Vote recorded",
		zap.String("meeting_id", meetingID.String()),
		zap.String("user_id", userID.String()),
		zap.String("restaurant_id", restaurantID.String()),
	)

	return s.toVoteResponse(vote), nil
}

// GetMyVote returns the user's live vote for a meeting, if any
func (s *voteServiceImpl) GetMyVote(ctx context.Context, meetingID, userID uuid.UUID) (*dto.VoteResponse, error) {
	vote, err := s.voteRepo.FindByMeetingAndUser(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch vote", err.Error())
	}
	return s.toVoteResponse(vote), nil
}

// toVoteResponse converts domain.Vote to dto.VoteResponse
func (s *voteServiceImpl) toVoteResponse(vote *domain.Vote) *dto.VoteResponse {
	return &dto.VoteResponse{
		MeetingID:    vote.MeetingID,
		UserID:       vote.UserID,
		RestaurantID: vote.RestaurantID,
		CreatedAt:    vote.CreatedAt,
	}
}
