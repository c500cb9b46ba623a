package outbox

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	domoutbox "github.com/Zhima-Mochi/minishop-marketplace/internal/domain/outbox"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability/logctx"
)

const componentOutbox = "outbox"

// Bus is an in-process event bus. Publish runs every handler for the event on the
// caller's goroutine, in subscription order, before returning.
type Bus struct {
	mu        sync.RWMutex
	subs      map[string][]domoutbox.Handler
	log       observability.Logger
	published observability.Counter // events_published_total{event,outcome}
}

func NewBus(tel observability.Observability) *Bus {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Bus{
		subs:      make(map[string][]domoutbox.Handler),
		log:       tel.Logger().With(observability.F("component", componentOutbox)),
		published: tel.Metrics().Counter(observability.MEventsPublished),
	}
}

func (b *Bus) Subscribe(eventName string, h domoutbox.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[eventName] = append(b.subs[eventName], h)
}

// Publish fans the event out and joins every handler error into the result.
func (b *Bus) Publish(ctx context.Context, e domoutbox.Event) error {
	if e == nil {
		return nil
	}
	name := e.EventName()
	logger := logctx.FromOr(ctx, b.log).With(observability.F("event", name))

	if err := ctx.Err(); err != nil {
		logger.Warn("event_publish_aborted", observability.F("error", err))
		b.count(name, "canceled")
		return err
	}

	b.mu.RLock()
	handlers := append([]domoutbox.Handler(nil), b.subs[name]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		logger.Debug("event_dropped_no_subscriber")
		b.count(name, "dropped")
		return nil
	}

	var errs []error
	for i, h := range handlers {
		if err := b.dispatch(ctx, logger, e, h); err != nil {
			logger.Warn("event_handler_error",
				observability.F("handler", i),
				observability.F("error", err),
			)
			errs = append(errs, err)
		}
	}

	logger.Debug("event_fanned_out", observability.F("handlers", len(handlers)))

	if err := errors.Join(errs...); err != nil {
		b.count(name, "error")
		return err
	}
	b.count(name, "success")
	return nil
}

func (b *Bus) dispatch(ctx context.Context, logger observability.Logger, e domoutbox.Event, h domoutbox.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event_handler_panic",
				observability.F("panic", r),
				observability.F("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("outbox: handler panic for %s: %v", e.EventName(), r)
		}
	}()
	return h(logctx.With(ctx, logger), e)
}

func (b *Bus) count(event, outcome string) {
	b.published.Add(1,
		observability.L("event", event),
		observability.L("outcome", outcome),
	)
}
