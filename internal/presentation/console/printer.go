// Package console renders marketplace output for a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/customer"
	"github.com/Zhima-Mochi/minishop-marketplace/internal/domain/product"
)

// Printer writes listings, receipts and failure notices as plain text.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Products(products []product.Product) error {
	if _, err := fmt.Fprintln(p.w, "Available products: "); err != nil {
		return err
	}
	for _, pr := range products {
		if _, err := fmt.Fprintf(p.w, "- %s ($%s, Quantity: %d)\n", pr.Name, pr.UnitPrice, pr.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) Receipt(r customer.Receipt) error {
	_, err := fmt.Fprintf(p.w,
		"Purchase successful!\n"+
			"Receipt: \n"+
			"Product: %s\n"+
			"Quantity: %d\n"+
			"Total Cost: %s\n"+
			"Payment Method: %s\n"+
			"Remaining Balance: %s\n",
		r.Product, r.Quantity, r.TotalCost, r.PaymentMethod, r.RemainingBalance,
	)
	return err
}

func (p *Printer) Failure() error {
	_, err := fmt.Fprintln(p.w, "Purchase failed.")
	return err
}
