package observability

import (
	"testing"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability"
	"github.com/stretchr/testify/require"
)

type countingCounter struct{ total float64 }

func (c *countingCounter) Add(d float64, _ ...observability.Label) { c.total += d }

func TestNewFallsBackToNop(t *testing.T) {
	p := New(nil, nil, nil, nil)

	require.NotNil(t, p.Tracer())
	require.NotNil(t, p.Logger())
	require.NotPanics(t, func() {
		p.Metrics().Counter(observability.MUsecaseRequests).Add(1)
		p.Metrics().Histogram(observability.MUsecaseDuration).Observe(1)
	})
}

func TestNewResolvesRegisteredCounters(t *testing.T) {
	c := &countingCounter{}
	p := New(nil, nil, map[observability.MetricKey]observability.Counter{
		observability.MPaymentAttempts: c,
	}, nil)

	p.Metrics().Counter(observability.MPaymentAttempts).Add(2)
	p.Metrics().Counter(observability.MEventsPublished).Add(5)

	require.Equal(t, 2.0, c.total)
}
