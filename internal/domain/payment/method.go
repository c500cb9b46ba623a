package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownMethod = errors.New("payment: unknown method")

// Method attempts to settle an amount against a caller-owned balance.
type Method interface {
	// Pay debits amount from balance and reports success. The balance is left
	// untouched when it does not cover the amount.
	Pay(amount decimal.Decimal, balance *decimal.Decimal) bool
	// Name is the label printed on receipts.
	Name() string
}

// Kind enumerates the supported payment methods. All kinds settle identically.
type Kind int

const (
	Cash Kind = iota + 1
	Card
	Crypto
)

var kindNames = map[Kind]string{
	Cash:   "Cash",
	Card:   "Card",
	Crypto: "Crypto",
}

// Kinds lists every method in declaration order.
func Kinds() []Kind { return []Kind{Cash, Card, Crypto} }

func (k Kind) Name() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) String() string { return k.Name() }

func (k Kind) Pay(amount decimal.Decimal, balance *decimal.Decimal) bool {
	return Debit(amount, balance)
}

// ParseKind resolves a method from its label, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.Name(), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Debit subtracts amount from balance when the balance covers it.
func Debit(amount decimal.Decimal, balance *decimal.Decimal) bool {
	if balance == nil || balance.LessThan(amount) {
		return false
	}
	*balance = balance.Sub(amount)
	return true
}
