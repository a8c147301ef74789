package app

import (
	"database/sql"

	"github.com/Arun-hash30/Attendence-helix/internal/config"
	"github.com/Arun-hash30/Attendence-helix/internal/leave"
	"github.com/Arun-hash30/Attendence-helix/internal/messaging/kafka"
	"github.com/Arun-hash30/Attendence-helix/internal/payslip"
	"github.com/Arun-hash30/Attendence-helix/internal/rbac"
	"github.com/Arun-hash30/Attendence-helix/internal/rbac/infra"
	"github.com/Arun-hash30/Attendence-helix/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	leaveLedger := leave.NewLedger(gormDB, cfg.Leave.Allotments)
	payslipRepo := payslip.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	userService := user.NewService(userRepo, logger)
	leaveService := leave.NewService(db, leaveRepo, leaveLedger, userService, outboxRepo, rdb, cfg.Cache, logger)
	payslipService := payslip.NewService(db, payslipRepo, userService, outboxRepo, logger)

	// --- Handlers ---
	userHandler := user.NewHandler(userService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payslipHandler := payslip.NewHandler(payslipService, rbacService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	secret := cfg.Auth.JWTSecret
	api := router.Group("/api/v1")
	{
		user.RegisterRoutes(api, userHandler, rbacService, secret, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb, secret, logger)
		payslip.RegisterRoutes(api, payslipHandler, rbacService, rdb, secret, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, secret)
	}

	return nil
}
