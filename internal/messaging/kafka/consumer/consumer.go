package consumer

import (
	"context"
	"errors"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// errSkip menandai message yang tidak akan pernah berhasil (payload rusak, duplikat).
// Message tetap di-commit supaya tidak diproses ulang.
var errSkip = errors.New("skip message")

const maxHandleAttempts = 5

var (
	initialBackoff = 500 * time.Millisecond
	maxBackoff     = 10 * time.Second
)

type handleFunc func(ctx context.Context, msg kafkago.Message) error

// run is the fetch/handle/commit loop shared by every consumer in this package.
func run(ctx context.Context, reader MessageReader, log *zap.Logger, handle handleFunc) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handleWithRetry(ctx, msg, log, handle); err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("handle message failed, leaving uncommitted",
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func handleWithRetry(ctx context.Context, msg kafkago.Message, log *zap.Logger, handle handleFunc) error {
	backoff := initialBackoff
	var err error

	for attempt := 1; attempt <= maxHandleAttempts; attempt++ {
		err = handle(ctx, msg)
		if err == nil || errors.Is(err, errSkip) {
			return nil
		}
		if attempt == maxHandleAttempts {
			break
		}

		log.Warn("handle message failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return err
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
