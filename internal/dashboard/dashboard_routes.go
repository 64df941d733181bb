package dashboard

import (
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/middleware"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		dash.GET("/metrics", middleware.RequirePermission(rbac.PermViewDashboard), handler.Metrics)
		dash.GET("/analytics", middleware.RequirePermission(rbac.PermViewAnalytics), handler.Analytics)
	}
}
