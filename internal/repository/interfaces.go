package repository

import (
	"cd-console-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user data access
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// OrganizationRepositoryInterface defines the interface for organization data access
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetOwnerOrgByName(name string) (*models.Organization, error)
}

// MemberRepositoryInterface defines the interface for membership data access
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByOrgAndUser(orgID, userID uuid.UUID) (*models.Member, error)
}

// ApplicationRepositoryInterface defines the interface for application data access
type ApplicationRepositoryInterface interface {
	Create(app *models.Application) error
	GetByID(id uuid.UUID) (*models.Application, error)
	GetByProviderRepo(provider models.Provider, providerRepoID string) (*models.Application, error)
	ListByOwnerOrgID(ownerOrgID uuid.UUID) ([]models.Application, error)
	Update(app *models.Application) error
	Delete(id uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task data access
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	ListByAppID(appID uuid.UUID) ([]models.Task, error)
	DeleteByAppID(appID uuid.UUID) ([]models.Task, error)
	DeleteByAppIDAndEnv(appID uuid.UUID, envName string) ([]models.Task, error)
}

// ProviderTokenRepositoryInterface defines the interface for provider token data access
type ProviderTokenRepositoryInterface interface {
	Create(token *models.ProviderToken) error
	GetToken(orgID, userID uuid.UUID, provider models.Provider) (*models.ProviderToken, error)
}
