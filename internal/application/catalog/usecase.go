package catalog

import (
	"context"
	"time"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/application"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/marketplace"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/product"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	catalogService     = "catalog-service"
	useCaseCatalogList = "catalog.list"
	spanName           = "UC.ListProducts"
)

type ListProductsInput struct{}

var _ application.UseCase[ListProductsInput, []product.Product] = (*ListProductsUseCase)(nil)

// ListProductsUseCase returns the marketplace inventory in listing order.
type ListProductsUseCase struct {
	registry marketplace.Registry

	log          observability.Logger
	tracer       observability.Tracer
	reqCounter   observability.Counter
	durHistogram observability.Histogram
}

func NewListProductsUseCase(registry marketplace.Registry, tel observability.Observability) *ListProductsUseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	return &ListProductsUseCase{
		registry:     registry,
		log:          tel.Logger().With(observability.F("service", catalogService)),
		tracer:       tel.Tracer(),
		reqCounter:   tel.Metrics().Counter(observability.MUsecaseRequests),
		durHistogram: tel.Metrics().Histogram(observability.MUsecaseDuration),
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, _ ListProductsInput) ([]product.Product, error) {
	ctx, span := uc.tracer.Start(ctx, spanName, attribute.String("use_case", useCaseCatalogList))
	start := time.Now()

	products := uc.registry.ListProducts()

	latency := time.Since(start).Seconds()
	span.SetAttributes(attribute.Int("catalog.size", len(products)))
	span.SetStatus(codes.Ok, "OK")
	span.End()

	uc.reqCounter.Add(1,
		observability.L("use_case", useCaseCatalogList),
		observability.L("outcome", "success"),
	)
	uc.durHistogram.Observe(latency, observability.L("use_case", useCaseCatalogList))

	logctx.FromOr(ctx, uc.log).Debug("use_case_done",
		observability.F("use_case", useCaseCatalogList),
		observability.F("outcome", "success"),
		observability.F("products", len(products)),
		observability.F("latency_seconds", latency),
	)
	return products, nil
}
