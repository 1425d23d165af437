package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting, candidates []domain.MeetingCandidate) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindByWeek(ctx context.Context, week int) ([]*domain.Meeting, error)
	FindByStatus(ctx context.Context, status domain.MeetingStatus) ([]*domain.Meeting, error)
	FindHostedByUser(ctx context.Context, hostID uuid.UUID, status domain.MeetingStatus) ([]*domain.Meeting, error)
	FindCandidates(ctx context.Context, meetingID uuid.UUID) ([]*domain.MeetingCandidate, error)
	FinalizeRoulette(ctx context.Context, meetingID uuid.UUID, result datatypes.JSON, selectedRestaurantID, spunBy uuid.UUID, spunAt time.Time) (bool, error)
	UpdateStatus(ctx context.Context, meetingID uuid.UUID, status domain.MeetingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindExpiredByStatus(ctx context.Context, status domain.MeetingStatus, before time.Time) ([]*domain.Meeting, error)
	Count(ctx context.Context) (int64, error)
}

// meetingRepositoryImpl is the GORM implementation of MeetingRepository
type meetingRepositoryImpl struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new instance of MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepositoryImpl{db: db}
}

// Create creates a meeting with its candidate list and the host's participant
// row in a single transaction
func (r *meetingRepositoryImpl) Create(ctx context.Context, meeting *domain.Meeting, candidates []domain.MeetingCandidate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}

		for i := range candidates {
			candidates[i].MeetingID = meeting.ID
			candidates[i].DisplayOrder = i
		}
		if len(candidates) > 0 {
			if err := tx.Create(&candidates).Error; err != nil {
				return err
			}
		}

		host := domain.Participant{
			MeetingID: meeting.ID,
			UserID:    meeting.HostID,
		}
		if err := tx.Create(&host).Error; err != nil {
			return err
		}

		return nil
	})
}

// FindByID finds a meeting by its ID with candidates preloaded
func (r *meetingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	var meeting domain.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Candidates.Restaurant").
		First(&meeting, id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindByWeek finds all meetings in a weekly recruitment bucket
func (r *meetingRepositoryImpl) FindByWeek(ctx context.Context, week int) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	if err := r.db.WithContext(ctx).
		Where("week = ?", week).
		Order("date ASC, time ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindByStatus finds all meetings with the given status
func (r *meetingRepositoryImpl) FindByStatus(ctx context.Context, status domain.MeetingStatus) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("date ASC, time ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindHostedByUser finds meetings hosted by a user, optionally filtered by status
func (r *meetingRepositoryImpl) FindHostedByUser(ctx context.Context, hostID uuid.UUID, status domain.MeetingStatus) ([]*domain.Meeting, error) {
	query := r.db.WithContext(ctx).Where("host_id = ?", hostID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var meetings []*domain.Meeting
	if err := query.Order("date ASC, time ASC").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindCandidates returns the meeting's candidate list in display order
func (r *meetingRepositoryImpl) FindCandidates(ctx context.Context, meetingID uuid.UUID) ([]*domain.MeetingCandidate, error) {
	var candidates []*domain.MeetingCandidate
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("meeting_id = ?", meetingID).
		Order("display_order ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// FinalizeRoulette records a roulette draw with a single conditional update.
// The WHERE clause only matches a recruiting meeting without a prior result, so
// concurrent spins resolve to exactly one winner: the losers see zero affected
// rows and report (false, nil).
func (r *meetingRepositoryImpl) FinalizeRoulette(ctx context.Context, meetingID uuid.UUID, result datatypes.JSON, selectedRestaurantID, spunBy uuid.UUID, spunAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Meeting{}).
		Where("id = ? AND roulette_result IS NULL AND status = ?", meetingID, domain.MeetingStatusRecruiting).
		Updates(map[string]interface{}{
			"roulette_result":        result,
			"selected_restaurant_id": selectedRestaurantID,
			"roulette_spun_at":       spunAt,
			"roulette_spun_by":       spunBy,
			"status":                 domain.MeetingStatusClosed,
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateStatus transitions a meeting's lifecycle status
func (r *meetingRepositoryImpl) UpdateStatus(ctx context.Context, meetingID uuid.UUID, status domain.MeetingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Meeting{}).
		Where("id = ?", meetingID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("meeting %s not found for status update", meetingID)
	}
	return nil
}

// Delete hard deletes a meeting; candidates, participants and votes are removed
// through their ON DELETE CASCADE constraints
func (r *meetingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// sqlite (테스트)에서는 CASCADE가 꺼져 있을 수 있어 명시적으로 삭제
		if err := tx.Unscoped().Where("meeting_id = ?", id).Delete(&domain.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("meeting_id = ?", id).Delete(&domain.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("meeting_id = ?", id).Delete(&domain.MeetingCandidate{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&domain.Meeting{}, id).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindExpiredByStatus finds meetings in the given status whose date has passed
func (r *meetingRepositoryImpl) FindExpiredByStatus(ctx context.Context, status domain.MeetingStatus, before time.Time) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	if err := r.db.WithContext(ctx).
		Where("status = ? AND date < ?", status, before).
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// Count returns the total number of meetings
func (r *meetingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Meeting{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
