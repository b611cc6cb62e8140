package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signordemola/belize-app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context; roleKey holds the role from the token.
const (
	userIDKey = contextKey("userID")
	roleKey   = contextKey("role")
)

// GetUserIDFromCtx retrieves the authenticated user ID from the context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetRoleFromCtx retrieves the authenticated user's role from the context.
func GetRoleFromCtx(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(roleKey).(domain.UserRole)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

// RequireAdmin aborts the request unless the token carried the ADMIN role.
// Services still re-check the role against the database; this only keeps
// non-admin traffic out of the admin route group.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRoleFromCtx(c.Request.Context())
		if !ok || role != domain.RoleAdmin {
			GetLoggerFromCtx(c.Request.Context()).Warn("Non-admin attempted admin route")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
