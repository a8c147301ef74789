package consumer

import (
	"context"
	"encoding/json"

	"github.com/Arun-hash30/Attendence-helix/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type PayslipNotifier interface {
	NotifyPayslipGenerated(ctx context.Context, event events.PayslipGeneratedEvent) error
}

// LogNotifier writes the notification to the structured log. Delivery by
// email or push is handled outside this service.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("payslip.notifier")}
}

func (n *LogNotifier) NotifyPayslipGenerated(ctx context.Context, event events.PayslipGeneratedEvent) error {
	n.logger.Info("payslip available",
		zap.Uint("user_id", event.UserID),
		zap.Uint("payslip_id", event.PayslipID),
		zap.Int("month", event.Month),
		zap.Int("year", event.Year),
		zap.String("net_pay", event.NetPay),
	)
	return nil
}

func ConsumePayslipGenerated(
	ctx context.Context,
	reader MessageReader,
	notifier PayslipNotifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_notification")
	log.Info("payslip notification consumer started", zap.String("topic", events.PayslipGeneratedTopic))

	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			return errSkip
		}
		return notifier.NotifyPayslipGenerated(ctx, event)
	})
}
