package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/repository"
)

// MeetingCloseJob advances meetings past their date through the lifecycle:
// recruiting -> closed -> completed
type MeetingCloseJob struct {
	meetingRepo repository.MeetingRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewMeetingCloseJob creates a new MeetingCloseJob instance
func NewMeetingCloseJob(
	meetingRepo repository.MeetingRepository,
	logger *zap.Logger,
) *MeetingCloseJob {
	return &MeetingCloseJob{
		meetingRepo: meetingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes one lifecycle sweep
// Recruiting meetings whose date has passed stop recruiting, and closed
// meetings whose date has passed are marked completed
func (j *MeetingCloseJob) Run() {
	ctx := context.Background()
	now := j.now()

	j.logger.Info("Starting meeting lifecycle sweep")

	closedCount := j.transition(ctx, domain.MeetingStatusRecruiting, domain.MeetingStatusClosed, now)
	completedCount := j.transition(ctx, domain.MeetingStatusClosed, domain.MeetingStatusCompleted, now)

	j.logger.Info("Meeting lifecycle sweep completed",
		zap.Int("closed", closedCount),
		zap.Int("completed", completedCount),
	)
}

// transition moves all meetings in fromStatus with a date before now to toStatus
func (j *MeetingCloseJob) transition(ctx context.Context, fromStatus, toStatus domain.MeetingStatus, now time.Time) int {
	expired, err := j.meetingRepo.FindExpiredByStatus(ctx, fromStatus, now)
	if err != nil {
		j.logger.Error("Failed to find expired meetings",
			zap.String("status", string(fromStatus)),
			zap.Error(err),
		)
		return 0
	}

	if len(expired) == 0 {
		return 0
	}

	successCount := 0
	for _, meeting := range expired {
		if err := j.meetingRepo.UpdateStatus(ctx, meeting.ID, toStatus); err != nil {
			j.logger.Error("Failed to update meeting status",
				zap.String("meeting_id", meeting.ID.String()),
				zap.String("from", string(fromStatus)),
				zap.String("to", string(toStatus)),
				zap.Error(err),
			)
			continue
		}
		successCount++

		j.logger.Debug("Meeting status updated",
			zap.String("meeting_id", meeting.ID.String()),
			zap.String("from", string(fromStatus)),
			zap.String("to", string(toStatus)),
		)
	}

	return successCount
}
