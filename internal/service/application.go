package service

import (
	"context"
	"errors"
	"fmt"

	"cd-console-backend/internal/database/models"
	apperrors "cd-console-backend/internal/errors"
	"cd-console-backend/internal/logger"
	"cd-console-backend/internal/provider"
	"cd-console-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationService orchestrates the application lifecycle across the
// application store, the task store and the webhook provider client. The
// multi-step operations run in a fixed order with no transaction wrapping:
// each store/provider call is atomic on its own, the sequence is not.
type ApplicationService struct {
	appRepo   repository.ApplicationRepositoryInterface
	taskRepo  repository.TaskRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	tokenRepo repository.ProviderTokenRepositoryInterface
	webhooks  provider.WebhookClientInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewApplicationService creates a new application lifecycle service
func NewApplicationService(
	appRepo repository.ApplicationRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	tokenRepo repository.ProviderTokenRepositoryInterface,
	webhooks provider.WebhookClientInterface,
	validator *validator.Validate,
) *ApplicationService {
	return &ApplicationService{
		appRepo:   appRepo,
		taskRepo:  taskRepo,
		orgRepo:   orgRepo,
		tokenRepo: tokenRepo,
		webhooks:  webhooks,
		validator: validator,
		log:       logger.New().WithField("service", "application"),
	}
}

// PreviewRequest identifies the remote repository a caller wants to bind
type PreviewRequest struct {
	Provider       models.Provider `json:"provider" validate:"required"`
	ProviderRepoID string          `json:"provider_repo_id" validate:"required"`
}

// CreateApplicationRequest represents the request to create an application
type CreateApplicationRequest struct {
	Provider       models.Provider       `json:"provider" validate:"required"`
	ProviderRepoID string                `json:"provider_repo_id" validate:"required"`
	Owner          string                `json:"owner" validate:"required"`
	Repo           string                `json:"repo" validate:"required"`
	RepoURL        string                `json:"repo_url,omitempty"`
	Description    string                `json:"description,omitempty"`
	Environment    models.EnvironmentMap `json:"environment,omitempty"`
}

// UpdateApplicationRequest represents a partial update of an application.
// Nil fields keep their prior values; set fields overwrite.
type UpdateApplicationRequest struct {
	RepoURL     *string               `json:"repo_url,omitempty"`
	Description *string               `json:"description,omitempty"`
	Environment models.EnvironmentMap `json:"environment,omitempty"`
	OrgID       *uuid.UUID            `json:"org_id,omitempty"`
	OwnerOrgID  *uuid.UUID            `json:"owner_org_id,omitempty"`
}

// ListByOrgName returns all applications owned by the named organization.
// An unknown organization yields an empty list, not an error.
func (s *ApplicationService) ListByOrgName(orgName string) ([]models.Application, error) {
	org, err := s.orgRepo.GetOwnerOrgByName(orgName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Application{}, nil
		}
		return nil, fmt.Errorf("failed to resolve organization %q: %w", orgName, err)
	}

	apps, err := s.appRepo.ListByOwnerOrgID(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// Preview fails when the remote repository is already bound to an
// application. This is a fast-path check only; the store's unique index on
// (provider, provider_repo_id) remains the authoritative guard.
func (s *ApplicationService) Preview(req *PreviewRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, err := s.appRepo.GetByProviderRepo(req.Provider, req.ProviderRepoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check repository binding: %w", err)
	}
	return apperrors.ErrRepositoryAlreadyBound
}

// Create binds a repository to a new application. Step order is fixed:
// preview, generate id and webhook secret, register the remote webhook (the
// gating side effect: on failure nothing is persisted), resolve the owner
// organization, persist the record. A crash between the webhook call and the
// store write leaves an orphaned remote hook; that gap is accepted and not
// rolled back here.
func (s *ApplicationService) Create(ctx context.Context, orgID uuid.UUID, orgName, providerToken string, req *CreateApplicationRequest) (uuid.UUID, error) {
	if err := s.validator.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.Preview(&PreviewRequest{Provider: req.Provider, ProviderRepoID: req.ProviderRepoID}); err != nil {
		return uuid.Nil, err
	}

	appID := uuid.New()
	webhookSecret := uuid.NewString()

	s.log.WithField("app_id", appID).Debug("start add webhook")
	err := s.webhooks.RegisterHook(ctx, provider.RegisterHookInput{
		Owner:    req.Owner,
		Repo:     req.Repo,
		Token:    providerToken,
		Secret:   webhookSecret,
		AppID:    appID.String(),
		Provider: req.Provider,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to register webhook: %w", err)
	}

	s.log.WithField("app_id", appID).Debug("start create app")
	ownerOrg, err := s.orgRepo.GetOwnerOrgByName(orgName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrOrganizationNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve organization %q: %w", orgName, err)
	}

	app := &models.Application{
		BaseModel:      models.BaseModel{ID: appID},
		OrgID:          orgID,
		OwnerOrgID:     ownerOrg.ID,
		Provider:       req.Provider,
		ProviderRepoID: req.ProviderRepoID,
		Owner:          req.Owner,
		RepoName:       req.Repo,
		RepoURL:        req.RepoURL,
		Description:    req.Description,
		Environment:    req.Environment,
		WebhookSecret:  webhookSecret,
	}
	if app.Environment == nil {
		app.Environment = models.EnvironmentMap{}
	}

	if err := s.appRepo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race with a concurrent create for the same repository.
			return uuid.Nil, apperrors.ErrRepositoryAlreadyBound
		}
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.log.WithField("app_id", appID).Debug("create app success")
	return appID, nil
}

// GetByID retrieves an application by id. Absence is reported as a nil
// record, not an error; callers decide whether that matters.
func (s *ApplicationService) GetByID(appID uuid.UUID) (*models.Application, error) {
	app, err := s.appRepo.GetByID(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// Update persists a shallow merge of the stored record with the set fields
// of params. Fails with a validation error when the application is absent.
func (s *ApplicationService) Update(appID uuid.UUID, req *UpdateApplicationRequest) error {
	app, err := s.GetByID(appID)
	if err != nil {
		return err
	}
	if app == nil {
		return apperrors.NewValidationError("", "application not found")
	}

	if req.RepoURL != nil {
		app.RepoURL = *req.RepoURL
	}
	if req.Description != nil {
		app.Description = *req.Description
	}
	if req.Environment != nil {
		app.Environment = req.Environment
	}
	if req.OrgID != nil {
		app.OrgID = *req.OrgID
	}
	if req.OwnerOrgID != nil {
		app.OwnerOrgID = *req.OwnerOrgID
	}

	if err := s.appRepo.Update(app); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// RemoveEnv tears down one environment of an application. Tasks scoped to
// the environment are deleted before the environment map is mutated so no
// task ever references a removed environment; the record itself is persisted
// unconditionally to keep the stored snapshot aligned with the merge.
func (s *ApplicationService) RemoveEnv(appID uuid.UUID, envName string) error {
	app, err := s.GetByID(appID)
	if err != nil {
		return err
	}
	if app == nil {
		return apperrors.NewValidationError("", "application not found")
	}

	if app.Environment.Has(envName) {
		s.log.WithFields(map[string]interface{}{"app_id": appID, "env": envName}).Debug("start remove tasks")
		deleted, err := s.taskRepo.DeleteByAppIDAndEnv(appID, envName)
		if err != nil {
			return fmt.Errorf("failed to delete tasks for environment %q: %w", envName, err)
		}
		s.log.WithFields(map[string]interface{}{"app_id": appID, "env": envName, "count": len(deleted)}).Debug("removed tasks")
	}

	s.log.WithField("app_id", appID).Debug("start update app")
	delete(app.Environment, envName)
	if err := s.appRepo.Update(app); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	s.log.WithField("app_id", appID).Debug("update app successfully")
	return nil
}

// Remove tears down an application: tasks first (no orphaned tasks against a
// live application), then the record, then the remote webhook (local state
// is authoritative before remote state is reconciled). The provider token is
// resolved against the caller's org and user, the authorization context the
// application was managed under. A webhook failure after local deletion
// leaves a dangling remote hook; accepted, not rolled back.
func (s *ApplicationService) Remove(ctx context.Context, orgID, userID, appID uuid.UUID) error {
	app, err := s.GetByID(appID)
	if err != nil {
		return err
	}
	if app == nil {
		return apperrors.NewValidationError("", "application not found")
	}

	token, err := s.tokenRepo.GetToken(orgID, userID, app.Provider)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProviderTokenNotFound
		}
		return fmt.Errorf("failed to resolve provider token: %w", err)
	}

	s.log.WithField("app_id", appID).Debug("start remove tasks")
	deleted, err := s.taskRepo.DeleteByAppID(appID)
	if err != nil {
		return fmt.Errorf("failed to delete tasks: %w", err)
	}
	s.log.WithFields(map[string]interface{}{"app_id": appID, "count": len(deleted)}).Debug("removed tasks")

	s.log.WithField("app_id", appID).Debug("start remove app")
	if err := s.appRepo.Delete(appID); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	s.log.WithField("app_id", appID).Debug("removed app successfully")

	err = s.webhooks.DeregisterHook(ctx, provider.DeregisterHookInput{
		Owner:    app.Owner,
		RepoName: app.RepoName,
		Token:    token.Token,
		AppID:    appID.String(),
		Provider: app.Provider,
	})
	if err != nil {
		return fmt.Errorf("failed to remove webhook: %w", err)
	}
	s.log.WithField("app_id", appID).Debug("removed webhook successfully")
	return nil
}

// Transfer moves an application to another organization. Both ownership
// fields move together; no record of the prior owner is retained.
func (s *ApplicationService) Transfer(appID uuid.UUID, transferOrgName string) error {
	org, err := s.orgRepo.GetOwnerOrgByName(transferOrgName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("", fmt.Sprintf("organization %q not found", transferOrgName))
		}
		return fmt.Errorf("failed to resolve organization %q: %w", transferOrgName, err)
	}

	return s.Update(appID, &UpdateApplicationRequest{
		OrgID:      &org.ID,
		OwnerOrgID: &org.ID,
	})
}

// ListTasks returns the recorded runs of an application
func (s *ApplicationService) ListTasks(appID uuid.UUID) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByAppID(appID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
