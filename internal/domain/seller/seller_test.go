package seller

import (
	"testing"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recordingRegistrar struct{ products []product.Product }

func (r *recordingRegistrar) AddProduct(p product.Product) { r.products = append(r.products, p) }

func TestAddProductStampsSellerID(t *testing.T) {
	reg := &recordingRegistrar{}
	alice := New("Alice", 1)

	alice.AddProduct(reg, "Laptop", decimal.NewFromInt(1000), 5)

	require.Len(t, reg.products, 1)
	got := reg.products[0]
	require.Equal(t, "Laptop", got.Name)
	require.Equal(t, 5, got.Quantity)
	require.Equal(t, 1, got.SellerID)
	require.True(t, decimal.NewFromInt(1000).Equal(got.UnitPrice))
}

func TestAddProductAcceptsNegativeValues(t *testing.T) {
	reg := &recordingRegistrar{}

	New("Bob", 2).AddProduct(reg, "Broken", decimal.NewFromInt(-5), -1)

	require.Len(t, reg.products, 1)
	require.Equal(t, -1, reg.products[0].Quantity)
}
