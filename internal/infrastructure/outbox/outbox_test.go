package outbox

import (
	"context"
	"errors"
	"testing"

	domoutbox "github.com/Zhima-Mochi/minishop-marketplace/internal/domain/outbox"
	infraobs "github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type pingEvent struct{ n int }

func (pingEvent) EventName() string { return "test.ping" }

func newTestBus(t *testing.T) (*Bus, *prometrics.Registry) {
	t.Helper()
	reg := prometrics.New("test")
	counters, histograms := reg.Register(observability.CounterSpecs, observability.HistogramSpecs)
	return NewBus(infraobs.New(nil, nil, counters, histograms)), reg
}

func TestPublishRunsHandlersInOrder(t *testing.T) {
	bus, _ := newTestBus(t)
	var seen []string
	bus.Subscribe("test.ping", func(_ context.Context, e domoutbox.Event) error {
		seen = append(seen, "first")
		return nil
	})
	bus.Subscribe("test.ping", func(_ context.Context, e domoutbox.Event) error {
		seen = append(seen, "second")
		require.Equal(t, 7, e.(pingEvent).n)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), pingEvent{n: 7}))
	require.Equal(t, []string{"first", "second"}, seen)
}

func TestPublishWithoutSubscribersIsDropped(t *testing.T) {
	bus, reg := newTestBus(t)

	require.NoError(t, bus.Publish(context.Background(), pingEvent{}))
	require.NoError(t, bus.Publish(context.Background(), nil))

	n, err := testutil.GatherAndCount(reg.Gatherer(), "test_events_published_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestPublishJoinsErrorsAndRecoversPanics(t *testing.T) {
	bus, _ := newTestBus(t)
	errFirst := errors.New("first failed")
	var reached bool
	bus.Subscribe("test.ping", func(context.Context, domoutbox.Event) error { return errFirst })
	bus.Subscribe("test.ping", func(context.Context, domoutbox.Event) error { panic("boom") })
	bus.Subscribe("test.ping", func(context.Context, domoutbox.Event) error {
		reached = true
		return nil
	})

	err := bus.Publish(context.Background(), pingEvent{})

	require.ErrorIs(t, err, errFirst)
	require.ErrorContains(t, err, "handler panic for test.ping: boom")
	require.True(t, reached)
}

func TestPublishCanceledContext(t *testing.T) {
	bus, _ := newTestBus(t)
	called := false
	bus.Subscribe("test.ping", func(context.Context, domoutbox.Event) error {
		called = true
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, bus.Publish(ctx, pingEvent{}), context.Canceled)
	require.False(t, called)
}
