package customer

import (
	"errors"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/payment"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/product"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientStock = errors.New("customer: insufficient stock")
	ErrNoPaymentMethod   = errors.New("customer: no payment method assigned")
	ErrInsufficientFunds = errors.New("customer: insufficient funds")
)

// Customer buys products from its own balance through an optional payment method.
type Customer struct {
	Name          string
	Balance       decimal.Decimal
	PaymentMethod payment.Method
}

func New(name string, balance decimal.Decimal) Customer {
	return Customer{Name: name, Balance: balance}
}

func (c *Customer) SetPaymentMethod(m payment.Method) {
	c.PaymentMethod = m
}

// Receipt summarises a successful purchase.
type Receipt struct {
	Product          string
	Quantity         int
	TotalCost        decimal.Decimal
	PaymentMethod    string
	RemainingBalance decimal.Decimal
}

// BuyProduct charges the customer for quantity units of p and takes them from stock.
// Checks run in order: stock, payment method, balance. On error neither the
// product nor the customer is modified.
func (c *Customer) BuyProduct(p *product.Product, quantity int) (Receipt, error) {
	totalCost := p.Cost(quantity)

	if !p.InStock(quantity) {
		return Receipt{}, ErrInsufficientStock
	}
	if c.PaymentMethod == nil {
		return Receipt{}, ErrNoPaymentMethod
	}
	if !c.PaymentMethod.Pay(totalCost, &c.Balance) {
		return Receipt{}, ErrInsufficientFunds
	}
	p.Purchase(quantity)

	return Receipt{
		Product:          p.Name,
		Quantity:         quantity,
		TotalCost:        totalCost,
		PaymentMethod:    c.PaymentMethod.Name(),
		RemainingBalance: c.Balance,
	}, nil
}
