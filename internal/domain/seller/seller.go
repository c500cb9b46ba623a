package seller

import (
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/product"
	"github.com/shopspring/decimal"
)

// Registrar accepts newly listed products.
type Registrar interface {
	AddProduct(p product.Product)
}

// Seller lists products. IDs are assigned by the caller and not checked for uniqueness.
type Seller struct {
	ID   int
	Name string
}

func New(name string, id int) Seller {
	return Seller{ID: id, Name: name}
}

// AddProduct lists a new product owned by this seller.
func (s Seller) AddProduct(r Registrar, name string, price decimal.Decimal, quantity int) {
	r.AddProduct(product.New(name, price, quantity, s.ID))
}
