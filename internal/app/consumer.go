package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Arun-hash30/Attendence-helix/internal/config"
	"github.com/Arun-hash30/Attendence-helix/internal/events"
	"github.com/Arun-hash30/Attendence-helix/internal/leave"
	"github.com/Arun-hash30/Attendence-helix/internal/messaging/kafka"
	"github.com/Arun-hash30/Attendence-helix/internal/messaging/kafka/consumer"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/connection"
	"github.com/Arun-hash30/Attendence-helix/internal/user"

	"go.uber.org/zap"
)

// RunConsumer projects leave lifecycle events into leave history and
// announces generated payslips, until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	userService := user.NewService(user.NewRepository(gormDB), logger)
	leaveService := leave.NewService(
		sqlDB,
		leave.NewRepository(gormDB),
		leave.NewLedger(gormDB, cfg.Leave.Allotments),
		userService,
		kafka.NewOutboxRepository(sqlDB),
		nil,
		cfg.Cache,
		logger,
	)

	leaveReader := connection.NewKafkaReader(cfg.Kafka, events.LeaveLifecycleTopic)
	defer leaveReader.Close()

	payslipCfg := cfg.Kafka
	payslipCfg.GroupID = cfg.Kafka.GroupID + "-payslip-notify"
	payslipReader := connection.NewKafkaReader(payslipCfg, events.PayslipGeneratedTopic)
	defer payslipReader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumeLeaveLifecycle(ctx, leaveReader, leaveService, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumePayslipGenerated(ctx, payslipReader, consumer.NewLogNotifier(logger), logger)
	}()

	<-ctx.Done()
	log.Info("consumer shutting down")
	wg.Wait()

	return nil
}
