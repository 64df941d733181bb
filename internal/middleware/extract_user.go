package middleware

import (
	"net/http"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/apperror"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/contextutil"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			response.Error(ctx, http.StatusUnauthorized, apperror.CodeUnauthorized, "User is not authenticated", nil)
			ctx.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(ctx, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid user_id format", nil)
			ctx.Abort()
			return
		}

		ctx.Set("user_id_validated", userIDStr)

		// Re-scope the request logger now that the caller is known.
		reqCtx := ctx.Request.Context()
		reqLogger := contextutil.GetLogger(reqCtx, zap.L()).With(zap.String("user_id", userIDStr))
		reqCtx = contextutil.WithUserID(reqCtx, userIDStr)
		reqCtx = contextutil.WithLogger(reqCtx, reqLogger)
		ctx.Request = ctx.Request.WithContext(reqCtx)

		ctx.Next()
	}
}
