package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
)

// VoteRepository defines the interface for vote data access
type VoteRepository interface {
	Replace(ctx context.Context, vote *domain.Vote) error
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Vote, error)
	FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Vote, error)
	CountByMeeting(ctx context.Context, meetingID uuid.UUID) (int64, error)
}

// voteRepositoryImpl is the GORM implementation of VoteRepository
type voteRepositoryImpl struct {
	db *gorm.DB
}

// NewVoteRepository creates a new instance of VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepositoryImpl{db: db}
}

// Replace removes the user's prior vote for the meeting and inserts the new
// one in a single transaction (last-vote-wins). The (meeting, user) unique
// index guarantees at most one live vote even under concurrent replaces.
func (r *voteRepositoryImpl) Replace(ctx context.Context, vote *domain.Vote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("meeting_id = ? AND user_id = ?", vote.MeetingID, vote.UserID).
			Delete(&domain.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Create(vote).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByMeetingID finds all live votes for a meeting
func (r *voteRepositoryImpl) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Vote, error) {
	var votes []*domain.Vote
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// FindByMeetingAndUser finds the user's live vote for a meeting
func (r *voteRepositoryImpl) FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Vote, error) {
	var vote domain.Vote
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// CountByMeeting counts the live votes for a meeting
func (r *voteRepositoryImpl) CountByMeeting(ctx context.Context, meetingID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Vote{}).
		Where("meeting_id = ?", meetingID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
