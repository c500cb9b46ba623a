package catalog

import (
	"context"
	"testing"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/seller"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/memory"
	infraobs "github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability/oteltrace"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability/zaplogger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestListProducts(t *testing.T) {
	market := memory.NewMarketplace()
	seller.New("Alice", 1).AddProduct(market, "Laptop", decimal.NewFromInt(1000), 5)
	seller.New("Bob", 2).AddProduct(market, "Phone", decimal.NewFromInt(500), 10)

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	core, logs := observer.New(zap.DebugLevel)
	tel := infraobs.New(oteltrace.FromProvider(tp, "catalog-test"), zaplogger.New(zap.New(core)), nil, nil)

	got, err := NewListProductsUseCase(market, tel).Execute(context.Background(), ListProductsInput{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Laptop", got[0].Name)
	require.Equal(t, "Phone", got[1].Name)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "UC.ListProducts", ended[0].Name())
	require.Contains(t, ended[0].Attributes(), attribute.Int("catalog.size", 2))

	done := logs.FilterMessage("use_case_done").All()
	require.Len(t, done, 1)
	require.EqualValues(t, 2, done[0].ContextMap()["products"])
}

func TestListProductsEmptyWithoutTelemetry(t *testing.T) {
	got, err := NewListProductsUseCase(memory.NewMarketplace(), nil).Execute(context.Background(), ListProductsInput{})

	require.NoError(t, err)
	require.Empty(t, got)
}
