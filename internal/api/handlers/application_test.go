package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cd-console-backend/internal/api/handlers"
	"cd-console-backend/internal/auth"
	"cd-console-backend/internal/database/models"
	apperrors "cd-console-backend/internal/errors"
	"cd-console-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ApplicationHandlerTestSuite defines the test suite for ApplicationHandler
type ApplicationHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockApps       *mocks.MockApplicationServiceInterface
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	mockMemberRepo *mocks.MockMemberRepositoryInterface
	mockTokenRepo  *mocks.MockProviderTokenRepositoryInterface
	handler        *handlers.ApplicationHandler
	router         *gin.Engine
	callerID       uuid.UUID
}

func (suite *ApplicationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockApps = mocks.NewMockApplicationServiceInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockTokenRepo = mocks.NewMockProviderTokenRepositoryInterface(suite.ctrl)
	suite.callerID = uuid.New()

	authSvc := auth.NewAuthService(
		mocks.NewMockUserRepositoryInterface(suite.ctrl),
		suite.mockOrgRepo,
		suite.mockMemberRepo,
		"test-secret",
		time.Hour,
	)
	suite.handler = handlers.NewApplicationHandler(suite.mockApps, authSvc, suite.mockOrgRepo, suite.mockTokenRepo)

	suite.router = gin.New()
	// Stand-in for the auth middleware
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Next()
	})
	suite.router.POST("/applications/preview", suite.handler.Preview)
	suite.router.GET("/applications/:id", suite.handler.Get)
	suite.router.GET("/applications/:id/tasks", suite.handler.ListTasks)
	suite.router.GET("/orgs/:orgName/applications", suite.handler.List)
	suite.router.POST("/orgs/:orgName/applications", suite.handler.Create)
	suite.router.PUT("/orgs/:orgName/applications/:id", suite.handler.Update)
	suite.router.DELETE("/orgs/:orgName/applications/:id", suite.handler.Remove)
	suite.router.POST("/orgs/:orgName/applications/:id/transfer", suite.handler.Transfer)
	suite.router.DELETE("/orgs/:orgName/applications/:id/environments/:envName", suite.handler.RemoveEnv)
}

func (suite *ApplicationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectOrgAdmin wires the org resolution and a passing role check
func (suite *ApplicationHandlerTestSuite) expectOrgAdmin(orgName string, orgID uuid.UUID) {
	suite.mockOrgRepo.EXPECT().
		GetOwnerOrgByName(orgName).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}, Name: orgName}, nil)
	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, suite.callerID).
		Return(&models.Member{OrganizationID: orgID, UserID: suite.callerID, Role: models.RoleAdmin}, nil)
}

func (suite *ApplicationHandlerTestSuite) TestList_Success() {
	apps := []models.Application{
		{BaseModel: models.BaseModel{ID: uuid.New()}, RepoName: "backend"},
	}
	suite.mockApps.EXPECT().ListByOrgName("acme").Return(apps, nil)

	req := httptest.NewRequest(http.MethodGet, "/orgs/acme/applications", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got struct {
		Total int `json:"total"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 1, got.Total)
}

func (suite *ApplicationHandlerTestSuite) TestPreview_Available() {
	suite.mockApps.EXPECT().Preview(gomock.Any()).Return(nil)

	body := bytes.NewBufferString(`{"provider":"github","provider_repo_id":"12345"}`)
	req := httptest.NewRequest(http.MethodPost, "/applications/preview", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"available":true`)
}

func (suite *ApplicationHandlerTestSuite) TestPreview_AlreadyBound() {
	suite.mockApps.EXPECT().Preview(gomock.Any()).Return(apperrors.ErrRepositoryAlreadyBound)

	body := bytes.NewBufferString(`{"provider":"github","provider_repo_id":"12345"}`)
	req := httptest.NewRequest(http.MethodPost, "/applications/preview", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "repository already bound")
}

func (suite *ApplicationHandlerTestSuite) TestCreate_Success() {
	orgID := uuid.New()
	appID := uuid.New()
	suite.expectOrgAdmin("acme", orgID)

	suite.mockTokenRepo.EXPECT().
		GetToken(orgID, suite.callerID, models.ProviderGitHub).
		Return(&models.ProviderToken{Token: "ghp_token"}, nil)

	suite.mockApps.EXPECT().
		Create(gomock.Any(), orgID, "acme", "ghp_token", gomock.Any()).
		Return(appID, nil)

	body := bytes.NewBufferString(`{"provider":"github","provider_repo_id":"12345","owner":"octocat","repo":"hello-world"}`)
	req := httptest.NewRequest(http.MethodPost, "/orgs/acme/applications", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), appID.String())
}

func (suite *ApplicationHandlerTestSuite) TestCreate_InsufficientRole() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().
		GetOwnerOrgByName("acme").
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}, Name: "acme"}, nil)
	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, suite.callerID).
		Return(&models.Member{OrganizationID: orgID, UserID: suite.callerID, Role: models.RoleMember}, nil)

	body := bytes.NewBufferString(`{"provider":"github","provider_repo_id":"12345","owner":"octocat","repo":"hello-world"}`)
	req := httptest.NewRequest(http.MethodPost, "/orgs/acme/applications", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "insufficient role")
}

func (suite *ApplicationHandlerTestSuite) TestCreate_NoMembership() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().
		GetOwnerOrgByName("acme").
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}, Name: "acme"}, nil)
	suite.mockMemberRepo.EXPECT().
		GetByOrgAndUser(orgID, suite.callerID).
		Return(nil, gorm.ErrRecordNotFound)

	body := bytes.NewBufferString(`{"provider":"github","provider_repo_id":"12345","owner":"octocat","repo":"hello-world"}`)
	req := httptest.NewRequest(http.MethodPost, "/orgs/acme/applications", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "not a member")
}

func (suite *ApplicationHandlerTestSuite) TestCreate_MissingProviderToken() {
	orgID := uuid.New()
	suite.expectOrgAdmin("acme", orgID)

	suite.mockTokenRepo.EXPECT().
		GetToken(orgID, suite.callerID, models.ProviderGitHub).
		Return(nil, gorm.ErrRecordNotFound)

	body := bytes.NewBufferString(`{"provider":"github","provider_repo_id":"12345","owner":"octocat","repo":"hello-world"}`)
	req := httptest.NewRequest(http.MethodPost, "/orgs/acme/applications", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "no provider token")
}

func (suite *ApplicationHandlerTestSuite) TestGet_Success() {
	appID := uuid.New()
	suite.mockApps.EXPECT().
		GetByID(appID).
		Return(&models.Application{BaseModel: models.BaseModel{ID: appID}, RepoName: "backend"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/applications/"+appID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "backend")
}

func (suite *ApplicationHandlerTestSuite) TestGet_NotFound() {
	appID := uuid.New()
	suite.mockApps.EXPECT().GetByID(appID).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/applications/"+appID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ApplicationHandlerTestSuite) TestGet_InvalidUUID() {
	req := httptest.NewRequest(http.MethodGet, "/applications/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid UUID format")
}

func (suite *ApplicationHandlerTestSuite) TestTransfer_UnknownTarget() {
	orgID := uuid.New()
	appID := uuid.New()
	suite.expectOrgAdmin("acme", orgID)

	suite.mockApps.EXPECT().
		Transfer(appID, "ghost").
		Return(apperrors.NewValidationError("", `organization "ghost" not found`))

	body := bytes.NewBufferString(`{"transfer_org_name":"ghost"}`)
	req := httptest.NewRequest(http.MethodPost, "/orgs/acme/applications/"+appID.String()+"/transfer", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "not found")
}

func (suite *ApplicationHandlerTestSuite) TestRemoveEnv_Success() {
	orgID := uuid.New()
	appID := uuid.New()
	suite.expectOrgAdmin("acme", orgID)

	suite.mockApps.EXPECT().RemoveEnv(appID, "staging").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/orgs/acme/applications/"+appID.String()+"/environments/staging", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ApplicationHandlerTestSuite) TestRemove_Success() {
	orgID := uuid.New()
	appID := uuid.New()
	suite.expectOrgAdmin("acme", orgID)

	suite.mockApps.EXPECT().
		Remove(gomock.Any(), orgID, suite.callerID, appID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/orgs/acme/applications/"+appID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ApplicationHandlerTestSuite) TestListTasks_Success() {
	appID := uuid.New()
	tasks := []models.Task{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ApplicationID: appID, EnvName: "prod"},
	}
	suite.mockApps.EXPECT().ListTasks(appID).Return(tasks, nil)

	req := httptest.NewRequest(http.MethodGet, "/applications/"+appID.String()+"/tasks", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"total":1`)
}

// TestApplicationHandlerTestSuite runs the test suite
func TestApplicationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationHandlerTestSuite))
}
