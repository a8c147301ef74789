package producer

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Arun-hash30/Attendence-helix/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOutboxRepo struct {
	pending    []kafka.OutboxEvent
	listErr    error
	gotLimit   int
	sent       []string
	failed     map[string]string
	markSentFn func(id string) error
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error { return nil }

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	f.gotLimit = limit
	return f.pending, f.listErr
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error {
	if f.markSentFn != nil {
		if err := f.markSentFn(id); err != nil {
			return err
		}
	}
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	messages []kafkago.Message
	failOn   map[string]error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failOn[string(m.Key)]; ok {
			return err
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func outboxEvent(id, aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     "req-" + id,
		AggregateType: "leave_request",
		AggregateID:   aggregateID,
		EventType:     "leave_applied",
		Topic:         "hr.leave.lifecycle.v1",
		Payload:       []byte(`{"event_id":"` + id + `"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents_PublishesAndMarksSent(t *testing.T) {
	repo := &fakeOutboxRepo{pending: []kafka.OutboxEvent{outboxEvent("e1", "10"), outboxEvent("e2", "11")}}
	writer := &fakeWriter{}

	sent, err := processPendingEvents(context.Background(), repo, writer, zap.NewNop(), 20)

	assert.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 20, repo.gotLimit)
	assert.Equal(t, []string{"e1", "e2"}, repo.sent)
	assert.Len(t, writer.messages, 2)

	msg := writer.messages[0]
	assert.Equal(t, "hr.leave.lifecycle.v1", msg.Topic)
	assert.Equal(t, "10", string(msg.Key))
	assert.Equal(t, "e1", headerValue(msg, "event_id"))
	assert.Equal(t, "req-e1", headerValue(msg, "request_id"))
	assert.Equal(t, "leave_applied", headerValue(msg, "event_type"))
}

func TestProcessPendingEvents_FailedPublishIsMarkedFailed(t *testing.T) {
	repo := &fakeOutboxRepo{pending: []kafka.OutboxEvent{outboxEvent("e1", "10"), outboxEvent("e2", "11")}}
	writer := &fakeWriter{failOn: map[string]error{"10": errors.New("leader not available")}}

	sent, err := processPendingEvents(context.Background(), repo, writer, zap.NewNop(), 50)

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"e2"}, repo.sent)
	assert.Equal(t, "leader not available", repo.failed["e1"])
}

func TestProcessPendingEvents_MarkSentErrorIsNotCounted(t *testing.T) {
	repo := &fakeOutboxRepo{
		pending:    []kafka.OutboxEvent{outboxEvent("e1", "10")},
		markSentFn: func(id string) error { return errors.New("db gone") },
	}
	writer := &fakeWriter{}

	sent, err := processPendingEvents(context.Background(), repo, writer, zap.NewNop(), 50)

	assert.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Len(t, writer.messages, 1)
	assert.Empty(t, repo.failed)
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	repo := &fakeOutboxRepo{listErr: errors.New("timeout")}

	_, err := processPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop(), 50)

	assert.EqualError(t, err, "timeout")
}

func TestBuildMessage_OmitsEmptyRequestID(t *testing.T) {
	e := outboxEvent("e1", "10")
	e.RequestID = ""

	msg := buildMessage(e)

	assert.Len(t, msg.Headers, 3)
	assert.Equal(t, "", headerValue(msg, "request_id"))
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		ProcessOutboxEvents(ctx, &fakeOutboxRepo{}, &fakeWriter{}, zap.NewNop(), 0, 0)
		close(done)
	}()
	<-done
}
