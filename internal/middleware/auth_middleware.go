package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/omarhn/registra/internal/app/auth"
	"github.com/omarhn/registra/internal/app/models"
	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextPrincipalID = "principalID"
	ContextRoleType    = "roleType"
	ContextStaffRole   = "staffRole"
)

// AuthMiddleware guards routes with token validation and capability checks.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	policy     *appauth.Policy
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, policy *appauth.Policy) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		policy:     policy,
	}
}

// JWTAuth validates the bearer token and stores the principal's identity in
// the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorKindAuthFailure, "authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextPrincipalID, claims.PrincipalID)
		c.Set(ContextRoleType, claims.RoleType)
		c.Set(ContextStaffRole, claims.StaffRole)

		c.Next()
	}
}

// CapabilityRequired rejects principals whose role lacks the capability.
// JWTAuth must run first.
func (m *AuthMiddleware) CapabilityRequired(cap appauth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleType, staffRole, ok := PrincipalRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorKindAuthFailure, "authentication required"))
			return
		}

		if err := m.policy.Check(roleType, staffRole, cap); err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// PrincipalID returns the authenticated principal's id from the context.
func PrincipalID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextPrincipalID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// PrincipalRole returns the authenticated principal's role from the context.
func PrincipalRole(c *gin.Context) (models.RoleType, models.StaffRole, bool) {
	rv, exists := c.Get(ContextRoleType)
	if !exists {
		return "", "", false
	}
	roleType, ok := rv.(models.RoleType)
	if !ok {
		return "", "", false
	}

	var staffRole models.StaffRole
	if sv, exists := c.Get(ContextStaffRole); exists {
		if sr, ok := sv.(models.StaffRole); ok {
			staffRole = sr
		}
	}
	return roleType, staffRole, true
}
