package middleware

import (
	"context"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and rolesKey store the authenticated principal in the request context.
const (
	userIDKey = contextKey("userID")
	rolesKey  = contextKey("roles")
)

// WithPrincipal returns a copy of ctx carrying the authenticated user.
func WithPrincipal(ctx context.Context, userID string, roles []domain.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, rolesKey, roles)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetRolesFromContext retrieves the roles of the authenticated user.
func GetRolesFromContext(c *gin.Context) []domain.Role {
	roles, _ := c.Request.Context().Value(rolesKey).([]domain.Role)
	return roles
}
