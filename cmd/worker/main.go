package main

import (
	"os"

	"github.com/Arun-hash30/Attendence-helix/internal/app"
	"github.com/Arun-hash30/Attendence-helix/internal/config"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/apperror"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/logger"

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

	if err := app.RunWorker(cfg, log); err != nil {
		log.Fatal("run worker failed", zap.Error(err))
	}
}
