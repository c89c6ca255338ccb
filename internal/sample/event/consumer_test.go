package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/entity"
)

type recordingHandler struct {
	mu       sync.Mutex
	events   []entity.BatchIssuedEvent
	failures int
}

func (h *recordingHandler) Handle(_ context.Context, event entity.BatchIssuedEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.failures > 0 {
		h.failures--
		return errors.New("transient")
	}

	h.events = append(h.events, event)
	return nil
}

func (h *recordingHandler) handled() []entity.BatchIssuedEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]entity.BatchIssuedEvent(nil), h.events...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestConsumerHandlesAndDeduplicates(t *testing.T) {
	bus := NewBus(8)
	handler := &recordingHandler{}
	consumer := NewAuditConsumer(bus, handler, ConsumerConfig{Workers: 2, MaxRetries: 0, BaseBackoff: time.Millisecond})
	consumer.Start()

	ctx := context.Background()
	event := entity.BatchIssuedEvent{EventID: "e1", BatchID: "b1", Count: 3}

	if err := bus.Publish(ctx, event); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := bus.Publish(ctx, event); err != nil {
		t.Fatalf("publish duplicate: %v", err)
	}
	if err := bus.Publish(ctx, entity.BatchIssuedEvent{EventID: "e2", BatchID: "b2", Count: 1}); err != nil {
		t.Fatalf("publish second: %v", err)
	}

	waitFor(t, func() bool { return len(handler.handled()) == 2 })

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := consumer.Stop(stopCtx); err != nil {
		t.Fatalf("stop: %v", err)
	}

	if got := len(handler.handled()); got != 2 {
		t.Fatalf("expected 2 handled events after dedupe, got %d", got)
	}
}

func TestConsumerRetriesTransientFailures(t *testing.T) {
	bus := NewBus(1)
	handler := &recordingHandler{failures: 2}
	consumer := NewAuditConsumer(bus, handler, ConsumerConfig{Workers: 1, MaxRetries: 3, BaseBackoff: time.Millisecond})
	consumer.Start()

	if err := bus.Publish(context.Background(), entity.BatchIssuedEvent{EventID: "e1", BatchID: "b1", Count: 1}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	waitFor(t, func() bool { return len(handler.handled()) == 1 })

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := consumer.Stop(stopCtx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestBusRejectsAfterClose(t *testing.T) {
	bus := NewBus(1)
	bus.Close()

	err := bus.Publish(context.Background(), entity.BatchIssuedEvent{EventID: "e1"})
	if !errors.Is(err, ErrBusClosed) {
		t.Fatalf("expected ErrBusClosed, got %v", err)
	}
}
