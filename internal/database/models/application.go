package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// EnvironmentMap holds the per-application set of named environment
// configurations, persisted as a single JSONB column.
type EnvironmentMap map[string]json.RawMessage

// Value implements driver.Valuer for JSONB storage
func (m EnvironmentMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB storage
func (m *EnvironmentMap) Scan(value interface{}) error {
	if value == nil {
		*m = EnvironmentMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for EnvironmentMap: %T", value)
	}
	return json.Unmarshal(data, m)
}

// Has reports whether the named environment is present
func (m EnvironmentMap) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Application binds one hosted repository to its delivery configuration.
// The (provider, provider_repo_id) pair is unique across all applications:
// at most one application binds a given remote repository. The unique index
// is the authoritative guard; the service-level preview is a fast path.
type Application struct {
	BaseModel
	OrgID          uuid.UUID      `json:"org_id" gorm:"type:uuid;not null;index"`
	OwnerOrgID     uuid.UUID      `json:"owner_org_id" gorm:"type:uuid;not null;index"`
	Provider       Provider       `json:"provider" gorm:"not null;size:20;uniqueIndex:idx_applications_provider_repo" validate:"required"`
	ProviderRepoID string         `json:"provider_repo_id" gorm:"not null;size:100;uniqueIndex:idx_applications_provider_repo" validate:"required"`
	Owner          string         `json:"owner" gorm:"not null;size:100" validate:"required"`
	RepoName       string         `json:"repo_name" gorm:"not null;size:100" validate:"required"`
	RepoURL        string         `json:"repo_url" gorm:"size:500"`
	Description    string         `json:"description" gorm:"type:text"`
	Environment    EnvironmentMap `json:"environment" gorm:"type:jsonb"`
	WebhookSecret  string         `json:"-" gorm:"not null;size:100"`

	// Relationships
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Application
func (Application) TableName() string {
	return "applications"
}
