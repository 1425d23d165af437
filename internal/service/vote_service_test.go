package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/response"
)

func TestVoteService_Vote(t *testing.T) {
	hostID := uuid.New()
	userID := uuid.New()
	meetingID := uuid.New()
	restaurantA := uuid.New()
	restaurantB := uuid.New()
	outsider := uuid.New() // 후보가 아닌 음식점

	rouletteMeeting := func() *domain.Meeting {
		m := &domain.Meeting{
			HostID: hostID,
			Type:   domain.MeetingTypeRoulette,
			Status: domain.MeetingStatusRecruiting,
			Candidates: []domain.MeetingCandidate{
				{MeetingID: meetingID, RestaurantID: restaurantA},
				{MeetingID: meetingID, RestaurantID: restaurantB},
			},
		}
		m.ID = meetingID
		return m
	}

	participating := &mockParticipantRepository{
		FindByMeetingAndUserFunc: func(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Participant, error) {
			return &domain.Participant{MeetingID: meetingID, UserID: userID}, nil
		},
	}

	t.Run("성공: 참가자의 유효한 투표", func(t *testing.T) {
		var replaced *domain.Vote
		meetingRepo := &mockMeetingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
				return rouletteMeeting(), nil
			},
		}
		voteRepo := &mockVoteRepository{
			ReplaceFunc: func(ctx context.Context, vote *domain.Vote) error {
				replaced = vote
				return nil
			},
		}

		svc := &voteServiceImpl{
			voteRepo:        voteRepo,
			meetingRepo:     meetingRepo,
			participantRepo: participating,
			logger:          zap.NewNop(),
		}

		resp, err := svc.Vote(context.Background(), meetingID, userID, restaurantA)
		require.NoError(t, err)
		require.NotNil(t, replaced)
		assert.Equal(t, restaurantA, replaced.RestaurantID)
		assert.Equal(t, restaurantA, resp.RestaurantID)
	})

	t.Run("실패: fixed 모임에는 투표 불가", func(t *testing.T) {
		meetingRepo := &mockMeetingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
				m := rouletteMeeting()
				m.Type = domain.MeetingTypeFixed
				return m, nil
			},
		}
		svc := &voteServiceImpl{
			voteRepo:        &mockVoteRepository{},
			meetingRepo:     meetingRepo,
			participantRepo: participating,
			logger:          zap.NewNop(),
		}

		_, err := svc.Vote(context.Background(), meetingID, userID, restaurantA)
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeValidation, appErrorCode(t, err))
	})

	t.Run("실패: 모집이 끝난 모임", func(t *testing.T) {
		meetingRepo := &mockMeetingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
				m := rouletteMeeting()
				m.Status = domain.MeetingStatusClosed
				return m, nil
			},
		}
		svc := &voteServiceImpl{
			voteRepo:        &mockVoteRepository{},
			meetingRepo:     meetingRepo,
			participantRepo: participating,
			logger:          zap.NewNop(),
		}

		_, err := svc.Vote(context.Background(), meetingID, userID, restaurantA)
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeMeetingNotRecruiting, appErrorCode(t, err))
	})

	t.Run("실패: 후보가 아닌 음식점에 투표", func(t *testing.T) {
		meetingRepo := &mockMeetingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
				return rouletteMeeting(), nil
			},
		}
		svc := &voteServiceImpl{
			voteRepo:        &mockVoteRepository{},
			meetingRepo:     meetingRepo,
			participantRepo: participating,
			logger:          zap.NewNop(),
		}

		_, err := svc.Vote(context.Background(), meetingID, userID, outsider)
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeNotACandidate, appErrorCode(t, err))
	})

	t.Run("실패: 참가하지 않은 사용자의 투표", func(t *testing.T) {
		meetingRepo := &mockMeetingRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
				return rouletteMeeting(), nil
			},
		}
		participantRepo := &mockParticipantRepository{
			FindByMeetingAndUserFunc: func(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Participant, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := &voteServiceImpl{
			voteRepo:        &mockVoteRepository{},
			meetingRepo:     meetingRepo,
			participantRepo: participantRepo,
			logger:          zap.NewNop(),
		}

		_, err := svc.Vote(context.Background(), meetingID, userID, restaurantA)
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeNotAParticipant, appErrorCode(t, err))
	})
}

func TestVoteService_GetMyVote(t *testing.T) {
	meetingID := uuid.New()
	userID := uuid.New()
	restaurantA := uuid.New()

	t.Run("성공: 투표가 있으면 반환한다", func(t *testing.T) {
		voteRepo := &mockVoteRepository{
			FindByMeetingAndUserFunc: func(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Vote, error) {
				return &domain.Vote{MeetingID: meetingID, UserID: userID, RestaurantID: restaurantA}, nil
			},
		}
		svc := &voteServiceImpl{voteRepo: voteRepo, logger: zap.NewNop()}

		resp, err := svc.GetMyVote(context.Background(), meetingID, userID)
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, restaurantA, resp.RestaurantID)
	})

	t.Run("성공: 투표가 없으면 nil을 반환한다", func(t *testing.T) {
		voteRepo := &mockVoteRepository{
			FindByMeetingAndUserFunc: func(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Vote, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := &voteServiceImpl{voteRepo: voteRepo, logger: zap.NewNop()}

		resp, err := svc.GetMyVote(context.Background(), meetingID, userID)
		require.NoError(t, err)
		assert.Nil(t, resp)
	})
}
