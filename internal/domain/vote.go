package domain

import "github.com/google/uuid"

// Vote records a participant's restaurant choice for a roulette meeting.
// At most one live vote per (meeting, user); a new vote replaces the prior one.
type Vote struct {
	BaseModel
	MeetingID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_votes_meeting_id;uniqueIndex:uq_votes_meeting_user" json:"meeting_id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_votes_user_id;uniqueIndex:uq_votes_meeting_user" json:"user_id"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;index:idx_votes_restaurant_id" json:"restaurant_id"`
	Meeting      Meeting    `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"meeting,omitempty"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "meeting_votes"
}
