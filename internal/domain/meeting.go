package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingType represents how the meeting's restaurant is decided
type MeetingType string

const (
	MeetingTypeFixed    MeetingType = "fixed"    // 음식점 지정
	MeetingTypeRoulette MeetingType = "roulette" // 투표로 결정
)

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingStatusRecruiting MeetingStatus = "recruiting"
	MeetingStatusClosed     MeetingStatus = "closed"
	MeetingStatusCompleted  MeetingStatus = "completed"
)

// Meeting represents a scheduled group dining event.
// For fixed meetings SelectedRestaurantID is set at creation and never changes.
// For roulette meetings it stays NULL until exactly one draw writes it together
// with RouletteResult; the conditional update in the repository guarantees the
// at-most-once draw.
type Meeting struct {
	BaseModel
	HostID               uuid.UUID      `gorm:"type:uuid;not null;index:idx_meetings_host_id" json:"host_id"`
	Date                 time.Time      `gorm:"type:date;not null;index:idx_meetings_date" json:"date"`
	Time                 string         `gorm:"type:varchar(8);not null" json:"time"`
	Week                 int            `gorm:"type:int;not null;index:idx_meetings_week" json:"week"`
	Type                 MeetingType    `gorm:"type:varchar(20);not null" json:"type"`
	Status               MeetingStatus  `gorm:"type:varchar(20);not null;default:'recruiting';index:idx_meetings_status" json:"status"`
	SelectedRestaurantID *uuid.UUID     `gorm:"type:uuid" json:"selected_restaurant_id"`
	RouletteResult       datatypes.JSON `gorm:"type:jsonb" json:"roulette_result,omitempty"`
	RouletteSpunAt       *time.Time     `gorm:"type:timestamp" json:"roulette_spun_at,omitempty"`
	RouletteSpunBy       *uuid.UUID     `gorm:"type:uuid" json:"roulette_spun_by,omitempty"`
	Host                 User           `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Candidates           []MeetingCandidate `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"candidates,omitempty"`
	Participants         []Participant      `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Votes                []Vote             `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"votes,omitempty"`
}

// IsRecruiting reports whether the meeting is still open for join/vote/spin
func (m *Meeting) IsRecruiting() bool {
	return m.Status == MeetingStatusRecruiting
}

// HasRouletteResult reports whether a draw has already been recorded
func (m *Meeting) HasRouletteResult() bool {
	return len(m.RouletteResult) > 0
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// MeetingCandidate registers a restaurant as selectable for a roulette meeting.
// DisplayOrder fixes the cumulative-walk order so a draw is reproducible.
type MeetingCandidate struct {
	BaseModel
	MeetingID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_meeting_candidates_meeting_id;uniqueIndex:uq_meeting_candidates_meeting_restaurant" json:"meeting_id"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_meeting_candidates_meeting_restaurant" json:"restaurant_id"`
	DisplayOrder int        `gorm:"type:int;not null;default:0" json:"display_order"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

// TableName specifies the table name for MeetingCandidate
func (MeetingCandidate) TableName() string {
	return "meeting_candidates"
}
