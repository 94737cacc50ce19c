package models

// User represents a registered account.
// Usernames share one global namespace with organization names: every user
// owns a personal organization created at registration under the same name.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`

	// Relationships
	Memberships []Member `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
