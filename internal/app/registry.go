package app

import (
	"database/sql"
	"os"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/auth"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/dashboard"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/employee"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/leave"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/messaging/kafka"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/middleware"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	emailDomain := os.Getenv("COMPANY_EMAIL_DOMAIN")
	if emailDomain == "" {
		emailDomain = auth.DefaultEmailDomain
	}
	dayPolicy := leave.ParseDayPolicy(os.Getenv("LEAVE_DAY_POLICY"))

	authService := auth.NewService(db, authRepo, outboxRepo, emailDomain)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, outboxRepo, dayPolicy)
	dashboardService := dashboard.NewService(dashboardRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler, rdb)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}
