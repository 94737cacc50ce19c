package models

import "github.com/google/uuid"

// Organization represents a tenant/team boundary. Every user owns exactly
// one organization whose name equals the username, created at registration.
type Organization struct {
	BaseModel
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Alias       string    `json:"alias" gorm:"size:100"`
	Description string    `json:"description" gorm:"type:text"`
	OwnerUserID uuid.UUID `json:"owner_user_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Members []Member `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// Member is the per-organization membership record carrying a user's role.
// Its absence is what the role check reports as a NoAuthError.
type Member struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_members_org_user"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_members_org_user"`
	Role           Role      `json:"role" gorm:"not null;size:20" validate:"required,oneof=owner admin member"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
