package repository

import (
	"cd-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByAppID retrieves all tasks for an application
func (r *TaskRepository) ListByAppID(appID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("application_id = ?", appID).Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteByAppID deletes all tasks for an application and returns the deleted
// set. Idempotent: deleting zero tasks is not an error.
func (r *TaskRepository) DeleteByAppID(appID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Clauses(clause.Returning{}).
		Where("application_id = ?", appID).
		Delete(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteByAppIDAndEnv deletes all tasks scoped to one (application,
// environment) pair and returns the deleted set. Idempotent.
func (r *TaskRepository) DeleteByAppIDAndEnv(appID uuid.UUID, envName string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Clauses(clause.Returning{}).
		Where("application_id = ? AND env_name = ?", appID, envName).
		Delete(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
