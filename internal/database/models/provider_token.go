package models

import "github.com/google/uuid"

// ProviderToken is the per-user, per-provider credential used to call the
// hosting platform's API. Scoped to the (org, user, provider) triple.
type ProviderToken struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_provider_tokens_scope"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_provider_tokens_scope"`
	Provider       Provider  `json:"provider" gorm:"not null;size:20;uniqueIndex:idx_provider_tokens_scope" validate:"required"`
	Token          string    `json:"-" gorm:"not null;size:200"`
}

// TableName returns the table name for ProviderToken
func (ProviderToken) TableName() string {
	return "provider_tokens"
}
