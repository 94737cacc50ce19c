package auth

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"cd-console-backend/internal/database/models"
	apperrors "cd-console-backend/internal/errors"
	"cd-console-backend/internal/logger"
	"cd-console-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// usernamePattern bounds what counts as a legal account name. Organization
// names live in the same namespace, so the same pattern governs both.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9-_]{1,50}$`)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "jwt"

// AuthService handles registration, password login, session tokens and
// organization role checks.
type AuthService struct {
	userRepo   repository.UserRepositoryInterface
	orgRepo    repository.OrganizationRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	jwtSecret  string
	sessionTTL time.Duration
	log        *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	jwtSecret string,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		log:        logger.New().WithField("service", "auth"),
	}
}

// InitUserRequest represents a registration request
type InitUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// InitUserResponse carries the ids created at registration
type InitUserResponse struct {
	UserID uuid.UUID `json:"user_id"`
	OrgID  uuid.UUID `json:"org_id"`
}

// LoginRequest represents a password login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionClaims represents the signed session token payload
type SessionClaims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// CookieSink receives the signed session token. *gin.Context satisfies it.
type CookieSink interface {
	SetCookie(name, value string, maxAge int, path, domain string, secure, httpOnly bool)
}

// InitUser registers a new account. Usernames and organization names share
// one global namespace: registration fails when either a user or an
// organization already claims the name, and succeeds by creating both the
// user and their personal organization under it.
func (s *AuthService) InitUser(req *InitUserRequest) (*InitUserResponse, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, apperrors.ErrInvalidUsername
	}

	_, err := s.userRepo.GetByUsername(req.Username)
	if err == nil {
		return nil, apperrors.NewValidationError("username", "username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	_, err = s.orgRepo.GetOwnerOrgByName(req.Username)
	if err == nil {
		return nil, apperrors.NewValidationError("username", "organization name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewValidationError("username", "username already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	org := &models.Organization{
		Name:        req.Username,
		OwnerUserID: user.ID,
	}
	if err := s.orgRepo.Create(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewValidationError("username", "organization name already exists")
		}
		return nil, fmt.Errorf("failed to create personal organization: %w", err)
	}

	member := &models.Member{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           models.RoleOwner,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	s.log.WithFields(map[string]interface{}{"user_id": user.ID, "org_id": org.ID}).Info("registered user")
	return &InitUserResponse{UserID: user.ID, OrgID: org.ID}, nil
}

// LoginWithPassword verifies a username/password pair. Unknown user and
// wrong password produce the same generic message; bcrypt's comparison is
// constant-time.
func (s *AuthService) LoginWithPassword(req *LoginRequest) (uuid.UUID, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrIncorrectCredentials
		}
		return uuid.Nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return uuid.Nil, apperrors.ErrIncorrectCredentials
	}

	return user.ID, nil
}

// SetJWT signs a session token asserting {userId, exp} and writes it to the
// caller's cookie sink with a matching max-age, unreachable from script.
func (s *AuthService) SetJWT(userID uuid.UUID, sink CookieSink) error {
	now := time.Now()
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	sink.SetCookie(SessionCookieName, signed, int(s.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// ValidateJWT validates and parses a session token
func (s *AuthService) ValidateJWT(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// CheckOrganizationRole resolves whether the user's role within the
// organization is in allowedRoles (DefaultAdminRoles when none are given).
// A user with no membership record at all gets a NoAuthError, a hard
// failure; a member with an insufficient role gets a plain false.
func (s *AuthService) CheckOrganizationRole(orgID, userID uuid.UUID, allowedRoles ...models.Role) (bool, error) {
	if len(allowedRoles) == 0 {
		allowedRoles = models.DefaultAdminRoles
	}

	member, err := s.memberRepo.GetByOrgAndUser(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrNoOrganizationMembership
		}
		return false, fmt.Errorf("failed to look up membership: %w", err)
	}

	for _, role := range allowedRoles {
		if member.Role == role {
			return true, nil
		}
	}
	return false, nil
}
