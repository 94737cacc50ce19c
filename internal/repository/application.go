package repository

import (
	"cd-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application. The composite unique index on
// (provider, provider_repo_id) makes this the authoritative guard against
// double-binding a repository; callers see gorm.ErrDuplicatedKey.
func (r *ApplicationRepository) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByProviderRepo retrieves the application bound to a remote repository
func (r *ApplicationRepository) GetByProviderRepo(provider models.Provider, providerRepoID string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "provider = ? AND provider_repo_id = ?", provider, providerRepoID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByOwnerOrgID retrieves all applications owned by an organization
func (r *ApplicationRepository) ListByOwnerOrgID(ownerOrgID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("owner_org_id = ?", ownerOrgID).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Update persists the full application record
func (r *ApplicationRepository) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

// Delete deletes an application
func (r *ApplicationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Application{}, "id = ?", id).Error
}
