package employee

import (
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/middleware"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		employees.GET("", middleware.RequirePermission(rbac.PermViewEmployees), handler.GetAll)
		employees.GET("/:id", middleware.RequirePermission(rbac.PermViewEmployees), handler.GetById)
		employees.POST("", middleware.RequirePermission(rbac.PermManageEmployees), handler.Create)
		employees.PUT("/:id", middleware.RequirePermission(rbac.PermManageEmployees), handler.Update)
		employees.DELETE("/:id", middleware.RequirePermission(rbac.PermManageEmployees), handler.Delete)
	}
}
