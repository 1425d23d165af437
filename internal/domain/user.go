package domain

// User represents an app user identified by a unique nickname
type User struct {
	BaseModel
	Nickname     string `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_nickname" json:"nickname"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	ProfileIcon  string `gorm:"type:varchar(20)" json:"profile_icon"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
