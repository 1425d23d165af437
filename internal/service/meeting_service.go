package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/metrics"
	"meeting-roulette-api/internal/repository"
	"meeting-roulette-api/internal/response"
)

const dateLayout = "2006-01-02"

// MeetingService defines the interface for meeting lifecycle and participation logic
type MeetingService interface {
	CreateMeeting(ctx context.Context, userID uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingDetailResponse, error)
	GetMeeting(ctx context.Context, meetingID, userID uuid.UUID) (*dto.MeetingDetailResponse, error)
	ListByWeek(ctx context.Context, week int) ([]*dto.MeetingResponse, error)
	MyMeetings(ctx context.Context, userID uuid.UUID) (*dto.MyMeetingsResponse, error)
	CanCreateMeeting(ctx context.Context, userID uuid.UUID) (bool, error)
	Join(ctx context.Context, meetingID, userID uuid.UUID) error
	Leave(ctx context.Context, meetingID, userID uuid.UUID) error
	Dissolve(ctx context.Context, meetingID, userID uuid.UUID) error
}

// meetingServiceImpl is the implementation of MeetingService
type meetingServiceImpl struct {
	meetingRepo     repository.MeetingRepository
	participantRepo repository.ParticipantRepository
	voteRepo        repository.VoteRepository
	userRepo        repository.UserRepository
	restaurantRepo  repository.RestaurantRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewMeetingService creates a new instance of MeetingService
func NewMeetingService(
	meetingRepo repository.MeetingRepository,
	participantRepo repository.ParticipantRepository,
	voteRepo repository.VoteRepository,
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) MeetingService {
	return &meetingServiceImpl{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		voteRepo:        voteRepo,
		userRepo:        userRepo,
		restaurantRepo:  restaurantRepo,
		metrics:         m,
		logger:          logger,
	}
}

// CanCreateMeeting reports whether the user may host a new meeting: no hosted
// recruiting meeting and no active participation anywhere
func (s *meetingServiceImpl) CanCreateMeeting(ctx context.Context, userID uuid.UUID) (bool, error) {
	hosted, err := s.meetingRepo.FindHostedByUser(ctx, userID, domain.MeetingStatusRecruiting)
	if err != nil {
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to check hosted meetings", err.Error())
	}
	if len(hosted) > 0 {
		return false, nil
	}

	active, err := s.participantRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to check participations", err.Error())
	}
	return len(active) == 0, nil
}

// CreateMeeting creates a fixed or roulette meeting hosted by the user
func (s *meetingServiceImpl) CreateMeeting(ctx context.Context, userID uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingDetailResponse, error) {
	canCreate, err := s.CanCreateMeeting(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !canCreate {
		return nil, response.NewAppError(response.ErrCodeCannotCreateMeeting,
			"Already hosting or participating in an active meeting", "")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, response.NewValidationError("Invalid date format, expected YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04:05", req.Time); err != nil {
		return nil, response.NewValidationError("Invalid time format, expected HH:MM:SS")
	}
	_, week := date.ISOWeek()

	meeting := &domain.Meeting{
		HostID: userID,
		Date:   date,
		Time:   req.Time,
		Week:   week,
		Type:   domain.MeetingType(req.Type),
		Status: domain.MeetingStatusRecruiting,
	}

	var candidates []domain.MeetingCandidate
	switch meeting.Type {
	case domain.MeetingTypeFixed:
		if req.SelectedRestaurantID == nil {
			return nil, response.NewValidationError("Fixed meetings require selectedRestaurantId")
		}
		if _, err := s.restaurantRepo.FindByID(ctx, *req.SelectedRestaurantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Restaurant not found")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify restaurant", err.Error())
		}
		meeting.SelectedRestaurantID = req.SelectedRestaurantID

	case domain.MeetingTypeRoulette:
		candidateIDs := dedupeUUIDs(req.CandidateIDs)
		if len(candidateIDs) < 2 {
			return nil, response.NewAppError(response.ErrCodeInvalidCandidateSet,
				"Roulette meetings require at least two distinct candidates", "")
		}
		restaurants, err := s.restaurantRepo.FindByIDs(ctx, candidateIDs)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify candidates", err.Error())
		}
		if len(restaurants) != len(candidateIDs) {
			return nil, response.NewNotFoundError("One or more candidate restaurants not found")
		}
		for _, id := range candidateIDs {
			candidates = append(candidates, domain.MeetingCandidate{RestaurantID: id})
		}

	default:
		return nil, response.NewValidationError("Unknown meeting type")
	}

	if err := s.meetingRepo.Create(ctx, meeting, candidates); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create meeting", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementMeetingCreated(string(meeting.Type))
	}
	s.logger.Info("Meeting created",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("host_id", userID.String()),
		zap.String("type", string(meeting.Type)),
		zap.Int("week", week),
	)

	return s.GetMeeting(ctx, meeting.ID, userID)
}

// GetMeeting returns the meeting detail view for the given viewer
func (s *meetingServiceImpl) GetMeeting(ctx context.Context, meetingID, userID uuid.UUID) (*dto.MeetingDetailResponse, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Meeting not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	participants, err := s.participantRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch participants", err.Error())
	}

	votes, err := s.voteRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch votes", err.Error())
	}

	detail := &dto.MeetingDetailResponse{
		MeetingResponse: *s.toMeetingResponse(ctx, meeting, len(participants), len(votes)),
		Participants:    make([]uuid.UUID, 0, len(participants)),
		IsHosting:       meeting.HostID == userID,
	}

	for _, participant := range participants {
		detail.Participants = append(detail.Participants, participant.UserID)
		if participant.UserID == userID {
			detail.IsParticipating = true
		}
	}

	if meeting.Type == domain.MeetingTypeRoulette {
		tally := make(map[uuid.UUID]int, len(meeting.Candidates))
		for _, vote := range votes {
			tally[vote.RestaurantID]++
			if vote.UserID == userID {
				restaurantID := vote.RestaurantID
				detail.MyVote = &restaurantID
			}
		}
		for _, candidate := range meeting.Candidates {
			detail.Candidates = append(detail.Candidates, dto.CandidateResponse{
				RestaurantID:   candidate.RestaurantID,
				RestaurantName: candidate.Restaurant.Name,
				Category:       candidate.Restaurant.Category,
				VoteCount:      tally[candidate.RestaurantID],
			})
		}
	}

	return detail, nil
}

// ListByWeek returns all meetings of a weekly recruitment bucket
func (s *meetingServiceImpl) ListByWeek(ctx context.Context, week int) ([]*dto.MeetingResponse, error) {
	meetings, err := s.meetingRepo.FindByWeek(ctx, week)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meetings", err.Error())
	}
	return s.toMeetingResponses(ctx, meetings), nil
}

// MyMeetings returns the user's hosted and participating meetings
func (s *meetingServiceImpl) MyMeetings(ctx context.Context, userID uuid.UUID) (*dto.MyMeetingsResponse, error) {
	hosted, err := s.meetingRepo.FindHostedByUser(ctx, userID, domain.MeetingStatusRecruiting)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch hosted meetings", err.Error())
	}

	active, err := s.participantRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch participations", err.Error())
	}

	participating := make([]*domain.Meeting, 0, len(active))
	for _, participant := range active {
		meeting, err := s.meetingRepo.FindByID(ctx, participant.MeetingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
		}
		if meeting.HostID == userID {
			continue // 호스팅 목록과 중복 방지
		}
		participating = append(participating, meeting)
	}

	return &dto.MyMeetingsResponse{
		Hosted:        s.toMeetingResponses(ctx, hosted),
		Participating: s.toMeetingResponses(ctx, participating),
		CanCreate:     len(hosted) == 0 && len(active) == 0,
	}, nil
}

// Join adds the user to a recruiting meeting
func (s *meetingServiceImpl) Join(ctx context.Context, meetingID, userID uuid.UUID) error {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Meeting not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	if !meeting.IsRecruiting() {
		return response.NewAppError(response.ErrCodeMeetingNotRecruiting, "Meeting is not recruiting", "")
	}

	active, err := s.participantRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check participations", err.Error())
	}
	if len(active) > 0 {
		return response.NewAppError(response.ErrCodeAlreadyParticipating,
			"Already participating in a meeting", "")
	}

	participant := &domain.Participant{
		MeetingID: meetingID,
		UserID:    userID,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		// 유니크 제약 위반 = check와 insert 사이에 끼어든 중복 참가
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return response.NewAppError(response.ErrCodeAlreadyParticipating,
				"Already participating in a meeting", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to join meeting", err.Error())
	}

	s.logger.Info("User joined meeting",
		zap.String("meeting_id", meetingID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

// Leave removes the user's membership. The host cannot leave; the host
// dissolves the meeting instead.
func (s *meetingServiceImpl) Leave(ctx context.Context, meetingID, userID uuid.UUID) error {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Meeting not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	if meeting.HostID == userID {
		return response.NewForbiddenError("Host cannot leave; dissolve the meeting instead")
	}

	if _, err := s.participantRepo.FindByMeetingAndUser(ctx, meetingID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotAParticipant, "Not a participant of this meeting", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify participant", err.Error())
	}

	if err := s.participantRepo.Delete(ctx, meetingID, userID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to leave meeting", err.Error())
	}

	s.logger.Info("User left meeting",
		zap.String("meeting_id", meetingID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

// Dissolve deletes the meeting and cascades its participants and votes.
// Host only.
func (s *meetingServiceImpl) Dissolve(ctx context.Context, meetingID, userID uuid.UUID) error {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Meeting not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}

	if meeting.HostID != userID {
		return response.NewForbiddenError("Only the host can dissolve a meeting")
	}

	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to dissolve meeting", err.Error())
	}

	s.logger.Info("Meeting dissolved",
		zap.String("meeting_id", meetingID.String()),
		zap.String("host_id", userID.String()),
	)
	return nil
}

// toMeetingResponse converts a domain.Meeting to a list/detail DTO
func (s *meetingServiceImpl) toMeetingResponse(ctx context.Context, meeting *domain.Meeting, participantCount, voteCount int) *dto.MeetingResponse {
	resp := &dto.MeetingResponse{
		ID:                   meeting.ID,
		HostID:               meeting.HostID,
		Date:                 meeting.Date.Format(dateLayout),
		Time:                 meeting.Time,
		Week:                 meeting.Week,
		Type:                 meeting.Type,
		Status:               meeting.Status,
		SelectedRestaurantID: meeting.SelectedRestaurantID,
		RouletteSpunAt:       meeting.RouletteSpunAt,
		ParticipantCount:     participantCount,
		VoteCount:            voteCount,
		CreatedAt:            meeting.CreatedAt,
	}

	if host, err := s.userRepo.FindByID(ctx, meeting.HostID); err == nil {
		resp.HostNickname = host.Nickname
	}

	if meeting.SelectedRestaurantID != nil {
		if restaurant, err := s.restaurantRepo.FindByID(ctx, *meeting.SelectedRestaurantID); err == nil {
			resp.SelectedRestaurantName = restaurant.Name
		}
	}

	if meeting.HasRouletteResult() {
		if result, err := domain.RouletteResultFromJSON(meeting.RouletteResult); err == nil {
			resp.RouletteResult = result
		} else {
			s.logger.Warn("Failed to parse stored roulette result",
				zap.String("meeting_id", meeting.ID.String()),
				zap.Error(err),
			)
		}
	}

	return resp
}

// toMeetingResponses converts meetings with their derived counts
func (s *meetingServiceImpl) toMeetingResponses(ctx context.Context, meetings []*domain.Meeting) []*dto.MeetingResponse {
	responses := make([]*dto.MeetingResponse, 0, len(meetings))
	for _, meeting := range meetings {
		participantCount, err := s.participantRepo.CountByMeeting(ctx, meeting.ID)
		if err != nil {
			participantCount = 0
		}
		voteCount, err := s.voteRepo.CountByMeeting(ctx, meeting.ID)
		if err != nil {
			voteCount = 0
		}
		responses = append(responses, s.toMeetingResponse(ctx, meeting, int(participantCount), int(voteCount)))
	}
	return responses
}

// dedupeUUIDs removes duplicate UUIDs preserving order
func dedupeUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
