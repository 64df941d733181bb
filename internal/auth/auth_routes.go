package auth

import (
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/middleware"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/logout", middleware.AuthMiddleware(), handler.Logout)
		auth.PUT("/users/:id/approve",
			middleware.AuthMiddleware(),
			middleware.ExtractUserID(),
			middleware.RequirePermission(rbac.PermManageRoles),
			handler.Approve,
		)
	}
}
