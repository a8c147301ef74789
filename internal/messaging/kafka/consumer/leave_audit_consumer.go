package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Arun-hash30/Attendence-helix/internal/events"
	leaveerrors "github.com/Arun-hash30/Attendence-helix/internal/leave/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// LeaveEventRecorder appends lifecycle events to the leave history.
type LeaveEventRecorder interface {
	RecordLeaveEvent(ctx context.Context, event events.LeaveEvent) error
}

func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader MessageReader,
	recorder LeaveEventRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_audit")
	log.Info("leave lifecycle consumer started", zap.String("topic", events.LeaveLifecycleTopic))

	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		return handleLeaveEvent(ctx, msg, recorder, log)
	})
}

func handleLeaveEvent(ctx context.Context, msg kafkago.Message, recorder LeaveEventRecorder, log *zap.Logger) error {
	var event events.LeaveEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return errSkip
	}
	if event.EventID == "" {
		event.EventID = header(msg, "event_id")
	}
	if event.EventID == "" || event.LeaveRequestID == 0 {
		log.Error("leave event without identity, skipping", zap.Int64("offset", msg.Offset))
		return errSkip
	}
	if event.RequestID == "" {
		event.RequestID = header(msg, "request_id")
	}

	if err := recorder.RecordLeaveEvent(ctx, event); err != nil {
		if errors.Is(err, leaveerrors.ErrDuplicateAuditEvent) {
			log.Warn("leave event already recorded, skipping",
				zap.String("event_id", event.EventID),
				zap.Uint("leave_request_id", event.LeaveRequestID),
			)
			return errSkip
		}
		return fmt.Errorf("record leave event %s: %w", event.EventID, err)
	}

	log.Info("leave event recorded",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("request_id", event.RequestID),
		zap.Uint("leave_request_id", event.LeaveRequestID),
	)
	return nil
}
