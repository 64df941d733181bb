package middleware

import (
	"net/http"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/rbac"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/apperror"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequirePermission gates a route on a single capability. The role comes from
// the verified token claims; an unknown role fails closed.
func RequirePermission(perm rbac.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := rbac.ParseRole(c.GetString("role"))
		if !ok || !rbac.HasPermission(role, perm) {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				gin.H{"required": string(perm)},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAny gates a route on holding at least one of the capabilities.
func RequireAny(perms ...rbac.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := rbac.ParseRole(c.GetString("role"))
		if !ok || !rbac.HasAny(role, perms...) {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource", nil,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
