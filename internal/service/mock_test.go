package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"meeting-roulette-api/internal/client"
	"meeting-roulette-api/internal/domain"
)

// 함수 필드 기반 mock 저장소들. 테스트에서 필요한 함수만 채워서 사용한다.

type mockMeetingRepository struct {
	CreateFunc              func(ctx context.Context, meeting *domain.Meeting, candidates []domain.MeetingCandidate) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindByWeekFunc          func(ctx context.Context, week int) ([]*domain.Meeting, error)
	FindByStatusFunc        func(ctx context.Context, status domain.MeetingStatus) ([]*domain.Meeting, error)
	FindHostedByUserFunc    func(ctx context.Context, hostID uuid.UUID, status domain.MeetingStatus) ([]*domain.Meeting, error)
	FindCandidatesFunc      func(ctx context.Context, meetingID uuid.UUID) ([]*domain.MeetingCandidate, error)
	FinalizeRouletteFunc    func(ctx context.Context, meetingID uuid.UUID, result datatypes.JSON, selectedRestaurantID, spunBy uuid.UUID, spunAt time.Time) (bool, error)
	UpdateStatusFunc        func(ctx context.Context, meetingID uuid.UUID, status domain.MeetingStatus) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	FindExpiredByStatusFunc func(ctx context.Context, status domain.MeetingStatus, before time.Time) ([]*domain.Meeting, error)
	CountFunc               func(ctx context.Context) (int64, error)
}

func (m *mockMeetingRepository) Create(ctx context.Context, meeting *domain.Meeting, candidates []domain.MeetingCandidate) error {
	return m.CreateFunc(ctx, meeting, candidates)
}

func (m *mockMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockMeetingRepository) FindByWeek(ctx context.Context, week int) ([]*domain.Meeting, error) {
	return m.FindByWeekFunc(ctx, week)
}

func (m *mockMeetingRepository) FindByStatus(ctx context.Context, status domain.MeetingStatus) ([]*domain.Meeting, error) {
	return m.FindByStatusFunc(ctx, status)
}

func (m *mockMeetingRepository) FindHostedByUser(ctx context.Context, hostID uuid.UUID, status domain.MeetingStatus) ([]*domain.Meeting, error) {
	return m.FindHostedByUserFunc(ctx, hostID, status)
}

func (m *mockMeetingRepository) FindCandidates(ctx context.Context, meetingID uuid.UUID) ([]*domain.MeetingCandidate, error) {
	return m.FindCandidatesFunc(ctx, meetingID)
}

func (m *mockMeetingRepository) FinalizeRoulette(ctx context.Context, meetingID uuid.UUID, result datatypes.JSON, selectedRestaurantID, spunBy uuid.UUID, spunAt time.Time) (bool, error) {
	return m.FinalizeRouletteFunc(ctx, meetingID, result, selectedRestaurantID, spunBy, spunAt)
}

func (m *mockMeetingRepository) UpdateStatus(ctx context.Context, meetingID uuid.UUID, status domain.MeetingStatus) error {
	return m.UpdateStatusFunc(ctx, meetingID, status)
}

func (m *mockMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockMeetingRepository) FindExpiredByStatus(ctx context.Context, status domain.MeetingStatus, before time.Time) ([]*domain.Meeting, error) {
	return m.FindExpiredByStatusFunc(ctx, status, before)
}

func (m *mockMeetingRepository) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

type mockParticipantRepository struct {
	CreateFunc               func(ctx context.Context, participant *domain.Participant) error
	FindByMeetingIDFunc      func(ctx context.Context, meetingID uuid.UUID) ([]*domain.Participant, error)
	FindByMeetingAndUserFunc func(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Participant, error)
	FindActiveByUserFunc     func(ctx context.Context, userID uuid.UUID) ([]*domain.Participant, error)
	CountByMeetingFunc       func(ctx context.Context, meetingID uuid.UUID) (int64, error)
	DeleteFunc               func(ctx context.Context, meetingID, userID uuid.UUID) error
}

func (m *mockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	return m.CreateFunc(ctx, participant)
}

func (m *mockParticipantRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Participant, error) {
	return m.FindByMeetingIDFunc(ctx, meetingID)
}

func (m *mockParticipantRepository) FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Participant, error) {
	return m.FindByMeetingAndUserFunc(ctx, meetingID, userID)
}

func (m *mockParticipantRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Participant, error) {
	return m.FindActiveByUserFunc(ctx, userID)
}

func (m *mockParticipantRepository) CountByMeeting(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	return m.CountByMeetingFunc(ctx, meetingID)
}

func (m *mockParticipantRepository) Delete(ctx context.Context, meetingID, userID uuid.UUID) error {
	return m.DeleteFunc(ctx, meetingID, userID)
}

type mockVoteRepository struct {
	ReplaceFunc              func(ctx context.Context, vote *domain.Vote) error
	FindByMeetingIDFunc      func(ctx context.Context, meetingID uuid.UUID) ([]*domain.Vote, error)
	FindByMeetingAndUserFunc func(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Vote, error)
	CountByMeetingFunc       func(ctx context.Context, meetingID uuid.UUID) (int64, error)
}

func (m *mockVoteRepository) Replace(ctx context.Context, vote *domain.Vote) error {
	return m.ReplaceFunc(ctx, vote)
}

func (m *mockVoteRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Vote, error) {
	return m.FindByMeetingIDFunc(ctx, meetingID)
}

func (m *mockVoteRepository) FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Vote, error) {
	return m.FindByMeetingAndUserFunc(ctx, meetingID, userID)
}

func (m *mockVoteRepository) CountByMeeting(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	return m.CountByMeetingFunc(ctx, meetingID)
}

type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByNicknameFunc func(ctx context.Context, nickname string) (*domain.User, error)
	UpdateFunc         func(ctx context.Context, user *domain.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepository) FindByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	return m.FindByNicknameFunc(ctx, nickname)
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.UpdateFunc(ctx, user)
}

type mockRestaurantRepository struct {
	CreateFunc    func(ctx context.Context, restaurant *domain.Restaurant) error
	FindByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	FindByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.Restaurant, error)
	FindAllFunc   func(ctx context.Context) ([]*domain.Restaurant, error)
}

func (m *mockRestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	return m.CreateFunc(ctx, restaurant)
}

func (m *mockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRestaurantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Restaurant, error) {
	return m.FindByIDsFunc(ctx, ids)
}

func (m *mockRestaurantRepository) FindAll(ctx context.Context) ([]*domain.Restaurant, error) {
	return m.FindAllFunc(ctx)
}

type mockPreferenceRepository struct {
	UpsertFunc     func(ctx context.Context, preference *domain.Preference) error
	FindByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Preference, error)
	DeleteFunc     func(ctx context.Context, userID, restaurantID uuid.UUID) error
}

func (m *mockPreferenceRepository) Upsert(ctx context.Context, preference *domain.Preference) error {
	return m.UpsertFunc(ctx, preference)
}

func (m *mockPreferenceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Preference, error) {
	return m.FindByUserFunc(ctx, userID)
}

func (m *mockPreferenceRepository) Delete(ctx context.Context, userID, restaurantID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, restaurantID)
}

type mockNotificationClient struct {
	SendNotificationFunc      func(ctx context.Context, event client.NotificationEvent) error
	SendBulkNotificationsFunc func(ctx context.Context, events []client.NotificationEvent) error
}

func (m *mockNotificationClient) SendNotification(ctx context.Context, event client.NotificationEvent) error {
	if m.SendNotificationFunc == nil {
		return nil
	}
	return m.SendNotificationFunc(ctx, event)
}

func (m *mockNotificationClient) SendBulkNotifications(ctx context.Context, events []client.NotificationEvent) error {
	if m.SendBulkNotificationsFunc == nil {
		return nil
	}
	return m.SendBulkNotificationsFunc(ctx, events)
}
