package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Task is a recorded pipeline run scoped to one (application, environment)
// pair. Tasks never outlive their application or environment: removing
// either cascades deletion here.
type Task struct {
	BaseModel
	ApplicationID uuid.UUID       `json:"application_id" gorm:"type:uuid;not null;index:idx_tasks_app_env"`
	EnvName       string          `json:"env_name" gorm:"not null;size:100;index:idx_tasks_app_env" validate:"required"`
	Status        TaskStatus      `json:"status" gorm:"not null;size:20;default:pending"`
	Payload       json.RawMessage `json:"payload" gorm:"type:jsonb"`

	// Relationships
	Application *Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
