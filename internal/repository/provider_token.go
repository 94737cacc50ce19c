package repository

import (
	"cd-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderTokenRepository handles database operations for provider tokens
type ProviderTokenRepository struct {
	db *gorm.DB
}

// NewProviderTokenRepository creates a new provider token repository
func NewProviderTokenRepository(db *gorm.DB) *ProviderTokenRepository {
	return &ProviderTokenRepository{db: db}
}

// Create creates a new provider token
func (r *ProviderTokenRepository) Create(token *models.ProviderToken) error {
	return r.db.Create(token).Error
}

// GetToken retrieves the credential scoped to the (org, user, provider) triple
func (r *ProviderTokenRepository) GetToken(orgID, userID uuid.UUID, provider models.Provider) (*models.ProviderToken, error) {
	var token models.ProviderToken
	err := r.db.First(&token, "organization_id = ? AND user_id = ? AND provider = ?", orgID, userID, provider).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}
