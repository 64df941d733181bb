package app

import (
	"os"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/auth"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/employee"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/leave"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure, runs migrations and registers every
// module on the router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, db, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&leave.LeaveRequest{},
	); err != nil {
		return err
	}

	// Tables written through raw SQL, outside gorm's model set.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS counters (
			counter_type VARCHAR(50) PRIMARY KEY,
			last_value BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			request_id VARCHAR(64),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id VARCHAR(64) NOT NULL,
			event_type VARCHAR(100) NOT NULL,
			topic VARCHAR(200) NOT NULL,
			payload JSONB NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			retry_count INT NOT NULL DEFAULT 0,
			error_message TEXT,
			next_retry_at TIMESTAMPTZ,
			processed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
			ON outbox_events (status, created_at)`,
	}
	for _, stmt := range statements {
		if err := gormDB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
