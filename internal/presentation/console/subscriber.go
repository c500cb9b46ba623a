package console

import (
	"context"
	"fmt"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/customer"
	domoutbox "github.com/Zhima-Mochi/minishop-marketplace/internal/domain/outbox"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability/logctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const componentConsole = "console"

// Subscriber prints the outcome of every purchase published on the bus.
type Subscriber struct {
	printer *Printer
	log     observability.Logger
}

func NewSubscriber(printer *Printer, tel observability.Observability) *Subscriber {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Subscriber{
		printer: printer,
		log:     tel.Logger().With(observability.F("component", componentConsole)),
	}
}

func (s *Subscriber) Register(sub domoutbox.Subscriber) {
	sub.Subscribe(customer.PurchaseCompletedEvent{}.EventName(), s.handleCompleted)
	sub.Subscribe(customer.PurchaseFailedEvent{}.EventName(), s.handleFailed)
}

func (s *Subscriber) handleCompleted(ctx context.Context, e domoutbox.Event) error {
	evt, ok := e.(customer.PurchaseCompletedEvent)
	if !ok {
		return nil
	}
	ctx = WithEventContext(ctx, s.log, map[string]string{
		"event_id": evt.PurchaseID,
		"event":    e.EventName(),
	})
	if err := s.printer.Receipt(evt.Receipt); err != nil {
		return fmt.Errorf("console: print receipt: %w", err)
	}
	logctx.FromOr(ctx, s.log).Debug("receipt_printed")
	return nil
}

func (s *Subscriber) handleFailed(ctx context.Context, e domoutbox.Event) error {
	evt, ok := e.(customer.PurchaseFailedEvent)
	if !ok {
		return nil
	}
	ctx = WithEventContext(ctx, s.log, map[string]string{
		"event_id": evt.PurchaseID,
		"event":    e.EventName(),
		"reason":   evt.Reason,
	})
	if err := s.printer.Failure(); err != nil {
		return fmt.Errorf("console: print failure: %w", err)
	}
	logctx.FromOr(ctx, s.log).Debug("failure_notice_printed")
	return nil
}

// WithEventContext injects an event-scoped logger. It adds event_id (generated
// when absent), trace ids from the active span when valid, and the remaining
// non-empty attributes, which should stay low-cardinality.
func WithEventContext(ctx context.Context, base observability.Logger, attrs map[string]string) context.Context {
	if base == nil {
		base = observability.NopLogger()
	}

	evtID := attrs["event_id"]
	if evtID == "" {
		evtID = uuid.NewString()
	}
	fields := make([]observability.Field, 0, len(attrs)+3)
	fields = append(fields, observability.F("event_id", evtID))

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			observability.F("trace_id", sc.TraceID().String()),
			observability.F("span_id", sc.SpanID().String()),
		)
	}

	for k, v := range attrs {
		if k == "event_id" || v == "" {
			continue
		}
		fields = append(fields, observability.F(k, v))
	}

	return logctx.With(ctx, base.With(fields...))
}
