package observability

const (
	MUsecaseRequests MetricKey = "usecase_requests_total"
	MUsecaseDuration MetricKey = "usecase_duration_seconds"
	MPaymentAttempts MetricKey = "payment_attempts_total"
	MEventsPublished MetricKey = "events_published_total"
	MStockUnitsSold  MetricKey = "stock_units_sold_total"
)

// MetricSpec describes how a metric key is registered with the backend.
type MetricSpec struct {
	Key    MetricKey
	Help   string
	Labels []string
}

// CounterSpecs lists every counter the application emits.
var CounterSpecs = []MetricSpec{
	{Key: MUsecaseRequests, Help: "Total number of use case invocations.", Labels: []string{"use_case", "outcome"}},
	{Key: MPaymentAttempts, Help: "Payment attempts grouped by method and outcome.", Labels: []string{"method", "outcome"}},
	{Key: MEventsPublished, Help: "Domain events published on the outbox bus.", Labels: []string{"event", "outcome"}},
	{Key: MStockUnitsSold, Help: "Units of stock sold per product.", Labels: []string{"product"}},
}

// HistogramSpecs lists every histogram the application emits.
var HistogramSpecs = []MetricSpec{
	{Key: MUsecaseDuration, Help: "Duration of use case execution in seconds.", Labels: []string{"use_case"}},
}
