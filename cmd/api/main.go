package main

import (
	"os"

	"github.com/Arun-hash30/Attendence-helix/internal/app"
	"github.com/Arun-hash30/Attendence-helix/internal/bootstrap"
	"github.com/Arun-hash30/Attendence-helix/internal/config"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/apperror"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("HR_CONFIG_FILE"))
	if err != nil {
		panic(err)
	}

	log := logger.MustInstall(cfg.Log)
	defer log.Sync()

	apperror.Init()
	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg, log)
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewStdoutAuditLogger(log)
	if err := bootstrap.StartHTTPServer(r, cfg.Server, auditLogger, log); err != nil {
		log.Error("http server stopped with error", zap.Error(err))
	}
}
