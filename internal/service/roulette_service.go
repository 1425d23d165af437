package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/client"
	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/metrics"
	"meeting-roulette-api/internal/repository"
	"meeting-roulette-api/internal/response"
	"meeting-roulette-api/internal/roulette"
)

// RouletteService defines the interface for the roulette draw
type RouletteService interface {
	Spin(ctx context.Context, meetingID, userID uuid.UUID) (*dto.SpinResponse, error)
}

// rouletteServiceImpl is the implementation of RouletteService
type rouletteServiceImpl struct {
	meetingRepo     repository.MeetingRepository
	voteRepo        repository.VoteRepository
	participantRepo repository.ParticipantRepository
	notiClient      client.NotificationClient
	metrics         *metrics.Metrics
	logger          *zap.Logger
	randFloat       func() float64
}

// NewRouletteService creates a new instance of RouletteService
func NewRouletteService(
	meetingRepo repository.MeetingRepository,
	voteRepo repository.VoteRepository,
	participantRepo repository.ParticipantRepository,
	notiClient client.NotificationClient,
	m *metrics.Metrics,
	logger *zap.Logger,
) RouletteService {
	return &rouletteServiceImpl{
		meetingRepo:     meetingRepo,
		voteRepo:        voteRepo,
		participantRepo: participantRepo,
		notiClient:      notiClient,
		metrics:         m,
		logger:          logger,
		randFloat:       rand.Float64,
	}
}

// Spin performs the one-time weighted draw for a roulette meeting.
// Preconditions are checked in order: meeting exists, invoker is the host,
// no prior result, meeting is a recruiting roulette, at least two candidates.
// The finalize update re-validates the no-prior-result condition atomically,
// so concurrent spins produce exactly one winner.
func (s *rouletteServiceImpl) Spin(ctx context.Context, meetingID, userID uuid.UUID) (*dto.SpinResponse, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Meeting not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	if meeting.HostID != userID {
		return nil, response.NewForbiddenError("Only the host can spin the roulette")
	}
	if meeting.HasRouletteResult() {
		return nil, response.NewAppError(response.ErrCodeAlreadySpun, "Roulette has already been spun", "")
	}
	if meeting.Type != domain.MeetingTypeRoulette {
		return nil, response.NewValidationError("Meeting is not a roulette meeting")
	}
	if !meeting.IsRecruiting() {
		return nil, response.NewAppError(response.ErrCodeMeetingNotRecruiting, "Meeting is not recruiting", "")
	}

	entries := make([]roulette.Entry, 0, len(meeting.Candidates))
	names := make(map[uuid.UUID]string, len(meeting.Candidates))
	for _, candidate := range meeting.Candidates {
		entries = append(entries, roulette.Entry{
			RestaurantID:   candidate.RestaurantID,
			RestaurantName: candidate.Restaurant.Name,
		})
		names[candidate.RestaurantID] = candidate.Restaurant.Name
	}

	votes, err := s.voteRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch votes", err.Error())
	}
	ballots := make(map[uuid.UUID]uuid.UUID, len(votes))
	for _, vote := range votes {
		ballots[vote.UserID] = vote.RestaurantID
	}

	candidates, err := roulette.Aggregate(entries, ballots)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeNoCandidates,
			"Not enough candidates to spin", err.Error())
	}

	r := s.randFloat()
	winner, err := roulette.Pick(candidates, r)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeNoCandidates, "Failed to draw a winner", err.Error())
	}

	result := &domain.RouletteResult{
		RandomValue:          r,
		Candidates:           candidates,
		SelectedRestaurantID: winner.RestaurantID,
	}
	resultJSON, err := result.ToJSON()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode roulette result", err.Error())
	}

	spunAt := time.Now().UTC()
	finalized, err := s.meetingRepo.FinalizeRoulette(ctx, meetingID, resultJSON, winner.RestaurantID, userID, spunAt)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to finalize roulette", err.Error())
	}
	if !finalized {
		// 조건부 업데이트에서 밀린 동시 스핀
		return nil, response.NewAppError(response.ErrCodeAlreadySpun, "Roulette has already been spun", "")
	}

	if s.metrics != nil {
		s.metrics.IncrementRouletteSpun()
	}
	s.logger.Info("Roulette spun",
		zap.String("meeting_id", meetingID.String()),
		zap.String("winner_id", winner.RestaurantID.String()),
		zap.Float64("random_value", r),
		zap.Int("candidates", len(candidates)),
	)

	s.notifyParticipants(ctx, meeting, winner)

	return &dto.SpinResponse{
		MeetingID:              meetingID,
		Result:                 *result,
		SelectedRestaurantName: names[winner.RestaurantID],
	}, nil
}

// notifyParticipants fans the result out to everyone in the meeting.
// Best-effort: a notification failure never fails the spin.
func (s *rouletteServiceImpl) notifyParticipants(ctx context.Context, meeting *domain.Meeting, winner domain.RouletteCandidate) {
	if s.notiClient == nil {
		return
	}

	participants, err := s.participantRepo.FindByMeetingID(ctx, meeting.ID)
	if err != nil {
		s.logger.Warn("Failed to load participants for notification",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
		return
	}

	events := make([]client.NotificationEvent, 0, len(participants))
	for _, participant := range participants {
		events = append(events, client.NotificationEvent{
			Type:         client.NotificationRouletteResult,
			ActorID:      meeting.HostID,
			TargetUserID: participant.UserID,
			ResourceType: "meeting",
			ResourceID:   meeting.ID,
			ResourceName: winner.RestaurantName,
		})
	}

	if err := s.notiClient.SendBulkNotifications(ctx, events); err != nil {
		s.logger.Warn("Failed to send roulette notifications",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
	}
}
