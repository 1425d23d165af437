package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Participant, error)
	FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Participant, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Participant, error)
	CountByMeeting(ctx context.Context, meetingID uuid.UUID) (int64, error)
	Delete(ctx context.Context, meetingID, userID uuid.UUID) error
}

// participantRepositoryImpl is the GORM implementation of ParticipantRepository
type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

// Create creates a new participant row. The (meeting, user) unique index closes
// the race between the service's exists-check and this insert.
func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return err
	}
	return nil
}

// FindByMeetingID finds all participants of a meeting
func (r *participantRepositoryImpl) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// FindByMeetingAndUser finds a membership row for a (meeting, user) pair
func (r *participantRepositoryImpl) FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindActiveByUser finds the user's memberships in non-completed meetings.
// Completed meetings are history and do not block new participation.
func (r *participantRepositoryImpl) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	if err := r.db.WithContext(ctx).
		Joins("JOIN meetings ON meetings.id = meeting_participants.meeting_id").
		Where("meeting_participants.user_id = ? AND meetings.status <> ? AND meetings.deleted_at IS NULL",
			userID, domain.MeetingStatusCompleted).
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// CountByMeeting counts the participants of a meeting
func (r *participantRepositoryImpl) CountByMeeting(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("meeting_id = ?", meetingID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a membership row
func (r *participantRepositoryImpl) Delete(ctx context.Context, meetingID, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Unscoped().
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Delete(&domain.Participant{}).Error; err != nil {
		return err
	}
	return nil
}
