package handlers

import (
	"errors"
	"net/http"

	"cd-console-backend/internal/auth"
	apperrors "cd-console-backend/internal/errors"
	"cd-console-backend/internal/repository"
	"cd-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationHandler handles HTTP requests for applications. Every mutating
// route resolves the caller's organization by name and gates on the
// organization role check before reaching the lifecycle service.
type ApplicationHandler struct {
	apps      service.ApplicationServiceInterface
	authSvc   *auth.AuthService
	orgRepo   repository.OrganizationRepositoryInterface
	tokenRepo repository.ProviderTokenRepositoryInterface
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(
	apps service.ApplicationServiceInterface,
	authSvc *auth.AuthService,
	orgRepo repository.OrganizationRepositoryInterface,
	tokenRepo repository.ProviderTokenRepositoryInterface,
) *ApplicationHandler {
	return &ApplicationHandler{
		apps:      apps,
		authSvc:   authSvc,
		orgRepo:   orgRepo,
		tokenRepo: tokenRepo,
	}
}

// userID extracts the authenticated caller's id set by the auth middleware
func userID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// requireOrgAdmin resolves the caller's organization by name and runs the
// role check. Writes the error response itself and reports success.
func (h *ApplicationHandler) requireOrgAdmin(c *gin.Context, orgName string) (orgID, callerID uuid.UUID, ok bool) {
	callerID, found := userID(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, uuid.Nil, false
	}

	org, err := h.orgRepo.GetOwnerOrgByName(orgName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "organization not found"})
			return uuid.Nil, uuid.Nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve organization", "details": err.Error()})
		return uuid.Nil, uuid.Nil, false
	}

	allowed, err := h.authSvc.CheckOrganizationRole(org.ID, callerID)
	if err != nil {
		if apperrors.IsNoAuth(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return uuid.Nil, uuid.Nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role", "details": err.Error()})
		return uuid.Nil, uuid.Nil, false
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role for this operation"})
		return uuid.Nil, uuid.Nil, false
	}

	return org.ID, callerID, true
}

// List handles GET /orgs/:orgName/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.apps.ListByOrgName(c.Param("orgName"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}

// Preview handles POST /applications/preview
func (h *ApplicationHandler) Preview(c *gin.Context) {
	var req service.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.apps.Preview(&req); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview repository", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true})
}

// Create handles POST /orgs/:orgName/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	orgName := c.Param("orgName")
	orgID, callerID, ok := h.requireOrgAdmin(c, orgName)
	if !ok {
		return
	}

	var req service.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, err := h.tokenRepo.GetToken(orgID, callerID, req.Provider)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no provider token configured for this provider"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve provider token", "details": err.Error()})
		return
	}

	appID, err := h.apps.Create(c.Request.Context(), orgID, orgName, token.Token, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": appID})
}

// Get handles GET /applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID: invalid UUID format"})
		return
	}

	app, err := h.apps.GetByID(appID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get application", "details": err.Error()})
		return
	}
	if app == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// Update handles PUT /orgs/:orgName/applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	if _, _, ok := h.requireOrgAdmin(c, c.Param("orgName")); !ok {
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID: invalid UUID format"})
		return
	}

	var req service.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.apps.Update(appID, &req); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": appID})
}

// Transfer handles POST /orgs/:orgName/applications/:id/transfer
func (h *ApplicationHandler) Transfer(c *gin.Context) {
	if _, _, ok := h.requireOrgAdmin(c, c.Param("orgName")); !ok {
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID: invalid UUID format"})
		return
	}

	var req struct {
		TransferOrgName string `json:"transfer_org_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.apps.Transfer(appID, req.TransferOrgName); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transfer application", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": appID})
}

// RemoveEnv handles DELETE /orgs/:orgName/applications/:id/environments/:envName
func (h *ApplicationHandler) RemoveEnv(c *gin.Context) {
	if _, _, ok := h.requireOrgAdmin(c, c.Param("orgName")); !ok {
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID: invalid UUID format"})
		return
	}

	if err := h.apps.RemoveEnv(appID, c.Param("envName")); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove environment", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Remove handles DELETE /orgs/:orgName/applications/:id
func (h *ApplicationHandler) Remove(c *gin.Context) {
	orgID, callerID, ok := h.requireOrgAdmin(c, c.Param("orgName"))
	if !ok {
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID: invalid UUID format"})
		return
	}

	if err := h.apps.Remove(c.Request.Context(), orgID, callerID, appID); err != nil {
		if apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove application", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTasks handles GET /applications/:id/tasks
func (h *ApplicationHandler) ListTasks(c *gin.Context) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID: invalid UUID format"})
		return
	}

	tasks, err := h.apps.ListTasks(appID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}
