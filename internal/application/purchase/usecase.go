package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/application"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/customer"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/marketplace"
	domoutbox "github.com/Zhima-Mochi/minishop-marketplace/internal/domain/outbox"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	purchaseService    = "purchase-service"
	useCasePurchaseBuy = "purchase.buy"
	purchaseSpanName   = "BuyProduct"
	spanPrefix         = "UC."

	FailureReasonProductNotFound  = "product_not_found"
	FailureReasonCustomerNotFound = "customer_not_found"
)

var (
	ErrProductNotFound  = errors.New("purchase: product not found")
	ErrCustomerNotFound = errors.New("purchase: customer not found")
	// ErrPublish wraps a failure to deliver the outcome event of a purchase.
	ErrPublish = errors.New("purchase: publish outcome")
)

type Input struct {
	CustomerName string
	ProductName  string
	Quantity     int
}

// Result exposes the outcome of a purchase attempt. Receipt is set only on success.
type Result struct {
	Success       bool
	PurchaseID    string
	Receipt       *customer.Receipt
	FailureReason string
}

var _ application.UseCase[Input, *Result] = (*UseCase)(nil)

type UseCase struct {
	registry  marketplace.Registry
	ids       IDGenerator
	publisher domoutbox.Publisher

	log          observability.Logger
	tracer       observability.Tracer
	reqCounter   observability.Counter   // usecase_requests_total{use_case,outcome}
	durHistogram observability.Histogram // usecase_duration_seconds{use_case}
	payCounter   observability.Counter   // payment_attempts_total{method,outcome}
	soldCounter  observability.Counter   // stock_units_sold_total{product}
}

func NewUseCase(registry marketplace.Registry, ids IDGenerator, publisher domoutbox.Publisher, tel observability.Observability) *UseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	metrics := tel.Metrics()
	return &UseCase{
		registry:     registry,
		ids:          ids,
		publisher:    publisher,
		log:          tel.Logger().With(observability.F("service", purchaseService)),
		tracer:       tel.Tracer(),
		reqCounter:   metrics.Counter(observability.MUsecaseRequests),
		durHistogram: metrics.Histogram(observability.MUsecaseDuration),
		payCounter:   metrics.Counter(observability.MPaymentAttempts),
		soldCounter:  metrics.Counter(observability.MStockUnitsSold),
	}
}

// Execute has the named customer buy quantity units of the named product and
// publishes the outcome. A failed purchase returns a non-nil error together with
// a Result describing the failure reason; no state is modified in that case.
func (uc *UseCase) Execute(ctx context.Context, in Input) (_ *Result, err error) {
	purchaseID := uc.ids.NewID()
	ctx, logger := logctx.Enrich(ctx, uc.log,
		observability.F("use_case", useCasePurchaseBuy),
		observability.F("purchase_id", purchaseID),
		observability.F("customer", in.CustomerName),
		observability.F("product", in.ProductName),
		observability.F("quantity", in.Quantity),
	)

	ctx, span := uc.tracer.Start(ctx, spanPrefix+purchaseSpanName,
		attribute.String("use_case", useCasePurchaseBuy),
		attribute.String("purchase.id", purchaseID),
		attribute.String("customer.name", in.CustomerName),
		attribute.String("product.name", in.ProductName),
		attribute.Int("purchase.quantity", in.Quantity),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"
	result := &Result{PurchaseID: purchaseID}
	var publishErr error

	defer func() {
		if span != nil {
			span.SetAttributes(attribute.Bool("purchase.success", result.Success))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, statusText)
			} else {
				span.SetStatus(codes.Ok, statusText)
			}
			span.End()
		}

		latency := time.Since(start).Seconds()
		uc.reqCounter.Add(1,
			observability.L("use_case", useCasePurchaseBuy),
			observability.L("outcome", outcome),
		)
		uc.durHistogram.Observe(latency,
			observability.L("use_case", useCasePurchaseBuy),
		)

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", latency),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if result.FailureReason != "" {
			fields = append(fields, observability.F("failure_reason", result.FailureReason))
		}
		if publishErr != nil {
			fields = append(fields, observability.F("event_error", publishErr.Error()))
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	receipt, buyErr := uc.buy(in)
	if buyErr != nil {
		outcome, statusText = "error", "PURCHASE_FAILED"
		result.FailureReason = failureReasonFromError(buyErr)
		publishErr = uc.publish(ctx, customer.NewPurchaseFailedEvent(purchaseID, in.CustomerName, in.ProductName, in.Quantity, result.FailureReason))
		err = fmt.Errorf("purchase: buy: %w", buyErr)
		if publishErr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrPublish, publishErr))
		}
		return result, err
	}

	result.Success = true
	result.Receipt = &receipt
	// Non-positive quantities go through unchecked; counters only move forward.
	if receipt.Quantity > 0 {
		uc.soldCounter.Add(float64(receipt.Quantity), observability.L("product", receipt.Product))
	}

	if span != nil {
		span.AddEvent("purchase.completed",
			trace.WithAttributes(
				attribute.String("payment.method", receipt.PaymentMethod),
				attribute.String("purchase.total_cost", receipt.TotalCost.String()),
			),
		)
	}

	publishErr = uc.publish(ctx, customer.NewPurchaseCompletedEvent(purchaseID, in.CustomerName, receipt))
	if publishErr != nil {
		outcome, statusText = "error", "EVENT_PUBLISH_FAILED"
		return result, fmt.Errorf("%w: %w", ErrPublish, publishErr)
	}

	return result, nil
}

// buy runs the stock check, debit and decrement as one registry update.
func (uc *UseCase) buy(in Input) (receipt customer.Receipt, err error) {
	err = uc.registry.Update(func(tx marketplace.Tx) error {
		buyer, ok := tx.FindCustomer(in.CustomerName)
		if !ok {
			return ErrCustomerNotFound
		}
		p, ok := tx.FindProduct(in.ProductName)
		if !ok {
			return ErrProductNotFound
		}

		var buyErr error
		receipt, buyErr = buyer.BuyProduct(p, in.Quantity)
		if buyer.PaymentMethod != nil && !errors.Is(buyErr, customer.ErrInsufficientStock) {
			payOutcome := "success"
			if buyErr != nil {
				payOutcome = "declined"
			}
			uc.payCounter.Add(1,
				observability.L("method", buyer.PaymentMethod.Name()),
				observability.L("outcome", payOutcome),
			)
		}
		return buyErr
	})
	return receipt, err
}

// publish delivers the outcome of a purchase that has already been decided, so
// cancellation of ctx does not suppress it.
func (uc *UseCase) publish(ctx context.Context, event domoutbox.Event) error {
	if uc.publisher == nil || event == nil {
		return nil
	}
	return uc.publisher.Publish(context.WithoutCancel(ctx), event)
}

func failureReasonFromError(err error) string {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return FailureReasonProductNotFound
	case errors.Is(err, ErrCustomerNotFound):
		return FailureReasonCustomerNotFound
	}
	if reason := customer.FailureReason(err); reason != "" {
		return reason
	}
	return err.Error()
}
