package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cd-console-backend/internal/api/handlers"
	"cd-console-backend/internal/auth"
	"cd-console-backend/internal/database/models"
	"cd-console-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	mockMemberRepo *mocks.MockMemberRepositoryInterface
	router         *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)

	svc := auth.NewAuthService(suite.mockUserRepo, suite.mockOrgRepo, suite.mockMemberRepo, "test-secret", time.Hour)
	handler := handlers.NewAuthHandler(svc)

	suite.router = gin.New()
	suite.router.POST("/auth/register", handler.Register)
	suite.router.POST("/auth/login", handler.Login)
	suite.router.POST("/auth/logout", handler.Logout)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// sessionCookie finds the session cookie in the response, if set
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	suite.mockUserRepo.EXPECT().GetByUsername("alice").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetOwnerOrgByName("alice").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		u.ID = uuid.New()
		return nil
	})
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(o *models.Organization) error {
		o.ID = uuid.New()
		return nil
	})
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)

	body := bytes.NewBufferString(`{"username":"alice","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "user_id")
	assert.Contains(suite.T(), w.Body.String(), "org_id")

	cookie := sessionCookie(w)
	assert.NotNil(suite.T(), cookie)
	assert.NotEmpty(suite.T(), cookie.Value)
	assert.True(suite.T(), cookie.HttpOnly)
}

func (suite *AuthHandlerTestSuite) TestRegister_NameTaken() {
	suite.mockUserRepo.EXPECT().GetByUsername("alice").Return(&models.User{Username: "alice"}, nil)

	body := bytes.NewBufferString(`{"username":"alice","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "username already exists")
	assert.Nil(suite.T(), sessionCookie(w))
}

func (suite *AuthHandlerTestSuite) TestRegister_InvalidUsername() {
	body := bytes.NewBufferString(`{"username":"no spaces allowed","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	suite.Require().NoError(err)
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().
		GetByUsername("alice").
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}, Username: "alice", PasswordHash: string(hash)}, nil)

	body := bytes.NewBufferString(`{"username":"alice","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), userID.String())
	assert.NotNil(suite.T(), sessionCookie(w))
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.mockUserRepo.EXPECT().
		GetByUsername("alice").
		Return(&models.User{Username: "alice", PasswordHash: string(hash)}, nil)

	body := bytes.NewBufferString(`{"username":"alice","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "incorrect username or password")
	assert.Nil(suite.T(), sessionCookie(w))
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownUser() {
	suite.mockUserRepo.EXPECT().
		GetByUsername("ghost").
		Return(nil, gorm.ErrRecordNotFound)

	body := bytes.NewBufferString(`{"username":"ghost","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "incorrect username or password")
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsCookie() {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	assert.NotNil(suite.T(), cookie)
	assert.Empty(suite.T(), cookie.Value)
	assert.Negative(suite.T(), cookie.MaxAge)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
