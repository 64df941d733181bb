package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/middleware"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestContextLogger(t *testing.T) {
	t.Run("propagates the incoming request id", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)

		r := gin.New()
		r.Use(middleware.ContextLogger(zap.New(core)))
		r.GET("/ping", func(c *gin.Context) {
			contextutil.GetLogger(c.Request.Context(), zap.NewNop()).Info("handled")
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "rid-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-123", w.Header().Get("X-Request-ID"))
		entries := logs.All()
		assert.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "rid-123", fields["request_id"])
	})

	t.Run("assigns a request id when the header is absent", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ContextLogger(zap.NewNop()))
		r.GET("/ping", func(c *gin.Context) {
			assert.NotEmpty(t, contextutil.GetRequestID(c.Request.Context()))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestExtractUserID(t *testing.T) {
	t.Run("scopes the request logger to the authenticated user", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		userID := uuid.New().String()

		r := gin.New()
		r.Use(middleware.ContextLogger(zap.New(core)))
		r.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
		})
		r.Use(middleware.ExtractUserID())
		r.GET("/me", func(c *gin.Context) {
			contextutil.GetLogger(c.Request.Context(), zap.NewNop()).Info("handled")
			assert.Equal(t, userID, contextutil.GetUserID(c.Request.Context()))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		entries := logs.All()
		assert.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, userID, fields["user_id"])
		assert.NotEmpty(t, fields["request_id"])
	})

	t.Run("negative missing identity returns 401", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ExtractUserID())
		r.GET("/me", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
