package leave

import (
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/middleware"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		leaves.GET("", middleware.RequirePermission(rbac.PermViewLeaves), handler.GetAll)
		leaves.GET("/:id", middleware.RequirePermission(rbac.PermViewLeaves), handler.GetByID)
		leaves.POST("",
			middleware.RequirePermission(rbac.PermViewLeaves),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		leaves.PUT("/:id/approve", middleware.RequirePermission(rbac.PermManageLeaves), handler.Approve)
		leaves.PUT("/:id/reject", middleware.RequirePermission(rbac.PermManageLeaves), handler.Reject)
	}
}
