package console

import (
	"bytes"
	"testing"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/customer"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	var buf bytes.Buffer

	err := NewPrinter(&buf).Products([]product.Product{
		product.New("Laptop", decimal.NewFromInt(1000), 5, 1),
		product.New("Phone", decimal.RequireFromString("499.5"), 10, 2),
	})

	require.NoError(t, err)
	require.Equal(t, "Available products: \n"+
		"- Laptop ($1000, Quantity: 5)\n"+
		"- Phone ($499.5, Quantity: 10)\n", buf.String())
}

func TestReceipt(t *testing.T) {
	var buf bytes.Buffer

	err := NewPrinter(&buf).Receipt(customer.Receipt{
		Product:          "Laptop",
		Quantity:         2,
		TotalCost:        decimal.NewFromInt(2000),
		PaymentMethod:    "Cash",
		RemainingBalance: decimal.Zero,
	})

	require.NoError(t, err)
	require.Equal(t, "Purchase successful!\n"+
		"Receipt: \n"+
		"Product: Laptop\n"+
		"Quantity: 2\n"+
		"Total Cost: 2000\n"+
		"Payment Method: Cash\n"+
		"Remaining Balance: 0\n", buf.String())
}

func TestFailure(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf).Failure())
	require.Equal(t, "Purchase failed.\n", buf.String())
}
