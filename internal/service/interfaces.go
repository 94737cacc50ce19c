package service

import (
	"context"

	"cd-console-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ApplicationServiceInterface defines the interface for the application
// lifecycle service
type ApplicationServiceInterface interface {
	ListByOrgName(orgName string) ([]models.Application, error)
	Preview(req *PreviewRequest) error
	Create(ctx context.Context, orgID uuid.UUID, orgName, providerToken string, req *CreateApplicationRequest) (uuid.UUID, error)
	GetByID(appID uuid.UUID) (*models.Application, error)
	Update(appID uuid.UUID, req *UpdateApplicationRequest) error
	RemoveEnv(appID uuid.UUID, envName string) error
	Remove(ctx context.Context, orgID, userID, appID uuid.UUID) error
	Transfer(appID uuid.UUID, transferOrgName string) error
	ListTasks(appID uuid.UUID) ([]models.Task, error)
}
