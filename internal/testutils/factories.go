package testutils

import (
	"encoding/json"
	"time"

	"cd-console-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix avoids collisions on the username index
		Username:     "user-" + id.String()[:8],
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "org-" + id.String()[:8],
		Alias:       "Test Organization",
		OwnerUserID: uuid.New(),
	}
}

// WithName sets a custom name
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithOwner sets the owning user
func (f *OrganizationFactory) WithOwner(userID uuid.UUID) *models.Organization {
	org := f.Create()
	org.OwnerUserID = userID
	return org
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create(orgID, userID uuid.UUID, role models.Role) *models.Member {
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	}
}

// ApplicationFactory provides methods to create test Application data
type ApplicationFactory struct{}

// NewApplicationFactory creates a new ApplicationFactory
func NewApplicationFactory() *ApplicationFactory {
	return &ApplicationFactory{}
}

// Create creates a test Application with default values
func (f *ApplicationFactory) Create(orgID uuid.UUID) *models.Application {
	id := uuid.New()
	return &models.Application{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrgID:          orgID,
		OwnerOrgID:     orgID,
		Provider:       models.ProviderGitHub,
		ProviderRepoID: "repo-" + id.String()[:8],
		Owner:          "octocat",
		RepoName:       "hello-world",
		RepoURL:        "https://github.com/octocat/hello-world",
		Environment: models.EnvironmentMap{
			"default": json.RawMessage(`{"region":"us-east-1"}`),
		},
		WebhookSecret: uuid.NewString(),
	}
}

// WithEnvironments sets the environment map
func (f *ApplicationFactory) WithEnvironments(orgID uuid.UUID, envs models.EnvironmentMap) *models.Application {
	app := f.Create(orgID)
	app.Environment = envs
	return app
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create(appID uuid.UUID, envName string) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ApplicationID: appID,
		EnvName:       envName,
		Status:        models.TaskStatusSucceeded,
		Payload:       json.RawMessage(`{"commit":"abc123"}`),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User          *UserFactory
	Organization  *OrganizationFactory
	Member        *MemberFactory
	Application   *ApplicationFactory
	Task          *TaskFactory
	ProviderToken *ProviderTokenFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          NewUserFactory(),
		Organization:  NewOrganizationFactory(),
		Member:        NewMemberFactory(),
		Application:   NewApplicationFactory(),
		Task:          NewTaskFactory(),
		ProviderToken: NewProviderTokenFactory(),
	}
}

// ProviderTokenFactory provides methods to create test ProviderToken data
type ProviderTokenFactory struct{}

// NewProviderTokenFactory creates a new ProviderTokenFactory
func NewProviderTokenFactory() *ProviderTokenFactory {
	return &ProviderTokenFactory{}
}

// Create creates a test ProviderToken with default values
func (f *ProviderTokenFactory) Create(orgID, userID uuid.UUID) *models.ProviderToken {
	return &models.ProviderToken{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		Provider:       models.ProviderGitHub,
		Token:          "ghp_" + uuid.NewString(),
	}
}
