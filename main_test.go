package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/config"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/payment"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() config.Config {
	return config.Config{
		ServiceName:   "minishop-marketplace",
		Env:           "test",
		LogLevel:      "info",
		PaymentMethod: "Cash",
	}
}

func TestRunScenario(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), testConfig(), demo, zap.NewNop(), &stdout, &stderr)

	require.NoError(t, err)
	require.Equal(t, "Available products: \n"+
		"- Laptop ($1000, Quantity: 5)\n"+
		"- Phone ($500, Quantity: 10)\n"+
		"Purchase successful!\n"+
		"Receipt: \n"+
		"Product: Laptop\n"+
		"Quantity: 2\n"+
		"Total Cost: 2000\n"+
		"Payment Method: Cash\n"+
		"Remaining Balance: 0\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestRunScenarioWithConfiguredMethod(t *testing.T) {
	cfg := testConfig()
	cfg.PaymentMethod = "crypto"
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, demo, zap.NewNop(), &stdout, &stderr))
	require.Contains(t, stdout.String(), "Payment Method: Crypto\n")
}

func TestRunRejectsUnknownMethod(t *testing.T) {
	cfg := testConfig()
	cfg.PaymentMethod = "cheque"
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), cfg, demo, zap.NewNop(), &stdout, &stderr)

	require.ErrorIs(t, err, payment.ErrUnknownMethod)
	require.Empty(t, stdout.String())
}

func TestRunDumpsMetrics(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsDump = true
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, demo, zap.NewNop(), &stdout, &stderr))
	require.Contains(t, stderr.String(), `minishop_usecase_requests_total{outcome="success",use_case="purchase.buy"} 1`)
	require.Contains(t, stderr.String(), `minishop_stock_units_sold_total{product="Laptop"} 2`)
	require.Contains(t, stderr.String(), `minishop_events_published_total{event="purchase.completed",outcome="success"} 1`)
}

func TestRunScenarioDeclinedPurchase(t *testing.T) {
	tests := []struct {
		name string
		sc   scenario
	}{
		{
			name: "insufficient funds",
			sc:   scenario{Balance: 2000, Product: "Laptop", Quantity: 3},
		},
		{
			name: "insufficient stock",
			sc:   scenario{Balance: 1_000_000, Product: "Laptop", Quantity: 6},
		},
		{
			name: "unknown product",
			sc:   scenario{Balance: 2000, Product: "Tablet", Quantity: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := run(context.Background(), testConfig(), tt.sc, zap.NewNop(), &stdout, &stderr)

			require.NoError(t, err)
			require.Equal(t, "Available products: \n"+
				"- Laptop ($1000, Quantity: 5)\n"+
				"- Phone ($500, Quantity: 10)\n"+
				"Purchase failed.\n", stdout.String())
		})
	}
}

func TestRunPrintsReceiptOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(ctx, testConfig(), demo, zap.NewNop(), &stdout, &stderr))
	require.Contains(t, stdout.String(), "Purchase successful!\n")
	require.Contains(t, stdout.String(), "Remaining Balance: 0\n")
}
