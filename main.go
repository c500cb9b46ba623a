package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/application/catalog"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/application/purchase"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/config"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/customer"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/payment"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/seller"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/id"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/memory"
	infraobs "github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability/oteltrace"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/infrastructure/outbox"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/pkg/logging"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/presentation/console"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	baseLogger := logging.MustNewLogger(logging.Options{
		Service: cfg.ServiceName,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Output:  cfg.LogOutput,
		File:    cfg.LogFile,
	})
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	systemLogger := logging.WithTrace(baseLogger, logging.SystemTraceID, logging.SystemSpanID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, demo, baseLogger, os.Stdout, os.Stderr); err != nil {
		systemLogger.Error("scenario_failed", zap.Error(err))
		_ = baseLogger.Sync()
		os.Exit(1)
	}
	systemLogger.Info("scenario_done")
}

// scenario is the customer side of the demo run.
type scenario struct {
	Balance  int64
	Product  string
	Quantity int
}

// demo has John spend his whole balance on two laptops.
var demo = scenario{Balance: 2000, Product: "Laptop", Quantity: 2}

// run drives the demo marketplace: two sellers list products, one customer
// browses the inventory and makes a single purchase.
func run(ctx context.Context, cfg config.Config, sc scenario, baseLogger *zap.Logger, stdout, stderr io.Writer) error {
	shutdownTracing, err := oteltrace.Setup(cfg.ServiceName, cfg.Env)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	metrics := prometrics.New("minishop")
	counters, histograms := metrics.Register(observability.CounterSpecs, observability.HistogramSpecs)
	tel := infraobs.New(
		oteltrace.New(cfg.ServiceName),
		zaplogger.New(baseLogger),
		counters,
		histograms,
	)

	method, err := payment.ParseKind(cfg.PaymentMethod)
	if err != nil {
		return fmt.Errorf("config: PAYMENT_METHOD: %w", err)
	}

	market := memory.NewMarketplace()
	bus := outbox.NewBus(tel)
	printer := console.NewPrinter(stdout)
	console.NewSubscriber(printer, tel).Register(bus)

	listProducts := catalog.NewListProductsUseCase(market, tel)
	buyProduct := purchase.NewUseCase(market, id.NewUUIDGenerator(), bus, tel)

	alice := seller.New("Alice", 1)
	bob := seller.New("Bob", 2)
	market.AddSeller(alice)
	market.AddSeller(bob)

	alice.AddProduct(market, "Laptop", decimal.NewFromInt(1000), 5)
	bob.AddProduct(market, "Phone", decimal.NewFromInt(500), 10)

	john := customer.New("John", decimal.NewFromInt(sc.Balance))
	john.SetPaymentMethod(method)
	market.AddCustomer(john)

	products, err := listProducts.Execute(ctx, catalog.ListProductsInput{})
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if err := printer.Products(products); err != nil {
		return fmt.Errorf("print products: %w", err)
	}

	res, err := buyProduct.Execute(ctx, purchase.Input{
		CustomerName: "John",
		ProductName:  sc.Product,
		Quantity:     sc.Quantity,
	})
	// A declined purchase is a normal outcome; the notice has been printed.
	if err != nil && (res == nil || res.FailureReason == "" || errors.Is(err, purchase.ErrPublish)) {
		return err
	}

	if cfg.MetricsDump {
		if err := metrics.Dump(stderr); err != nil {
			return err
		}
	}
	return nil
}
