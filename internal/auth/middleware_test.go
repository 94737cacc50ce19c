package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cd-console-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupProtectedRouter(t *testing.T) (*gin.Engine, *AuthService) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := NewAuthService(
		mocks.NewMockUserRepositoryInterface(ctrl),
		mocks.NewMockOrganizationRepositoryInterface(ctrl),
		mocks.NewMockMemberRepositoryInterface(ctrl),
		"test-secret",
		time.Hour,
	)

	router := gin.New()
	router.Use(NewAuthMiddleware(svc).RequireAuth())
	router.GET("/protected", func(c *gin.Context) {
		userID := c.MustGet("user_id").(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router, svc
}

func signedToken(t *testing.T, svc *AuthService, userID uuid.UUID) string {
	sink := &capturedCookie{}
	require.NoError(t, svc.SetJWT(userID, sink))
	return sink.value
}

func TestRequireAuth(t *testing.T) {
	t.Run("accepts a valid session cookie", func(t *testing.T) {
		router, svc := setupProtectedRouter(t)
		userID := uuid.New()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signedToken(t, svc, userID)})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("accepts a bearer header when no cookie is set", func(t *testing.T) {
		router, svc := setupProtectedRouter(t)
		userID := uuid.New()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, svc, userID))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects requests without credentials", func(t *testing.T) {
		router, _ := setupProtectedRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication required")
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		router, svc := setupProtectedRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signedToken(t, svc, uuid.New()) + "x"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})
}
