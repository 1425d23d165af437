package domain

import "github.com/google/uuid"

// Preference stores a user's personal rating of a restaurant
type Preference struct {
	BaseModel
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_preferences_user_id;uniqueIndex:uq_preferences_user_restaurant" json:"user_id"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_preferences_user_restaurant" json:"restaurant_id"`
	Score        *float32   `gorm:"type:real" json:"score,omitempty"`
	Status       string     `gorm:"type:varchar(50)" json:"status,omitempty"`
	Note         string     `gorm:"type:text" json:"note,omitempty"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

// TableName specifies the table name for Preference
func (Preference) TableName() string {
	return "preferences"
}
