package middleware

import (
	"context"
	"net/http"
	"strings"

	"servit/models"
	"servit/services/auth"
	"servit/utils"

	"github.com/gin-gonic/gin"
)

// SessionValidator resolves a bearer token to an admin.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*models.Admin, error)
}

// JWTAuthAdminMiddleware validates the bearer token and attaches the current
// admin record to the context. Missing or bad tokens are 401, disabled
// accounts 403.
func JWTAuthAdminMiddleware(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "No token provided")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		admin, err := sessions.ValidateSession(c.Request.Context(), tokenString)
		if err != nil {
			utils.JSONError(c, utils.StatusCode(err), utils.PublicMessage(err))
			return
		}

		c.Set(utils.ContextAdminKey, admin)
		c.Next()
	}
}

// CurrentAdmin returns the admin attached by JWTAuthAdminMiddleware.
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	value, ok := c.Get(utils.ContextAdminKey)
	if !ok {
		return nil, false
	}
	admin, ok := value.(*models.Admin)
	return admin, ok && admin != nil
}

// RequireCapability gates a route group on one capability. Super admins
// always pass.
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		admin, ok := CurrentAdmin(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !auth.CanAccess(admin, capability) {
			utils.JSONError(c, http.StatusForbidden, "Access denied. Required permission: "+capability)
			return
		}
		c.Next()
	}
}
