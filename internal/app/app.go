package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/Arun-hash30/Attendence-helix/internal/config"
	"github.com/Arun-hash30/Attendence-helix/internal/middleware"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/connection"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects infrastructure, registers every module on router and
// returns a cleanup func that closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := connection.RunMigrations(sqlDB, logger); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	// Redis opsional: tanpa redis, cache dan idempotency dilewati.
	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, 3, logger)
	if err != nil {
		log.Warn("redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}

	router.Use(cors.New(corsConfig(cfg.Server)))
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))
	router.GET("/health", healthHandler(sqlDB, rdb))

	// 2. Register Modules & Routes
	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}

	log.Info("application wired")
	return cleanup, nil
}

func corsConfig(cfg config.ServerConfig) cors.Config {
	return cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID", "Idempotent-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func healthHandler(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "up", "redis": "disabled"}
		if err := db.PingContext(ctx); err != nil {
			status["database"] = "down"
			response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database tidak tersedia", status)
			return
		}
		if rdb != nil {
			status["redis"] = "up"
			if err := rdb.Ping(ctx).Err(); err != nil {
				status["redis"] = "down"
			}
		}
		response.Success(c, http.StatusOK, status, nil)
	}
}
