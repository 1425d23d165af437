package domain

import "github.com/google/uuid"

// Participant represents a user participating in a meeting.
// The host always has a participant row created with the meeting; it can only be
// removed by dissolving the meeting.
type Participant struct {
	BaseModel
	MeetingID uuid.UUID `gorm:"type:uuid;not null;index:idx_participants_meeting_id;uniqueIndex:uq_participants_meeting_user" json:"meeting_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_participants_user_id;uniqueIndex:uq_participants_meeting_user" json:"user_id"`
	Meeting   Meeting   `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"meeting,omitempty"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "meeting_participants"
}
