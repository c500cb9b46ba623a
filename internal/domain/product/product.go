package product

import "github.com/shopspring/decimal"

// Product is a listed item. Name, UnitPrice and SellerID are fixed at creation;
// Quantity is the remaining stock and only shrinks through Purchase.
type Product struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	SellerID  int
}

// New builds a product. Price and quantity are taken as given.
func New(name string, unitPrice decimal.Decimal, quantity, sellerID int) Product {
	return Product{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		SellerID:  sellerID,
	}
}

// InStock reports whether quantity units can currently be taken.
func (p *Product) InStock(quantity int) bool {
	return quantity <= p.Quantity
}

// Purchase takes quantityToBuy units from stock. It returns false and leaves
// the stock untouched when not enough units remain.
func (p *Product) Purchase(quantityToBuy int) bool {
	if !p.InStock(quantityToBuy) {
		return false
	}
	p.Quantity -= quantityToBuy
	return true
}

// Cost is the total price of quantity units.
func (p *Product) Cost(quantity int) decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
