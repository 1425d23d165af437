package domain

// Restaurant represents immutable restaurant reference data
type Restaurant struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Category    string `gorm:"type:varchar(100);index:idx_restaurants_category" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	MapURL      string `gorm:"type:text" json:"map_url"`
}

// TableName specifies the table name for Restaurant
func (Restaurant) TableName() string {
	return "restaurants"
}
