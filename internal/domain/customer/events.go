package customer

import (
	"errors"
	"time"
)

const (
	FailureReasonInsufficientStock = "insufficient_stock"
	FailureReasonNoPaymentMethod   = "no_payment_method"
	FailureReasonInsufficientFunds = "insufficient_funds"
)

// FailureReason maps a BuyProduct error to its low-cardinality reason label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientStock):
		return FailureReasonInsufficientStock
	case errors.Is(err, ErrNoPaymentMethod):
		return FailureReasonNoPaymentMethod
	case errors.Is(err, ErrInsufficientFunds):
		return FailureReasonInsufficientFunds
	default:
		return ""
	}
}

// PurchaseCompletedEvent is emitted once stock and balance have both been updated.
type PurchaseCompletedEvent struct {
	PurchaseID string
	Customer   string
	Receipt    Receipt
	OccurredAt time.Time
}

func (PurchaseCompletedEvent) EventName() string { return "purchase.completed" }

func NewPurchaseCompletedEvent(purchaseID, customerName string, r Receipt) PurchaseCompletedEvent {
	return PurchaseCompletedEvent{
		PurchaseID: purchaseID,
		Customer:   customerName,
		Receipt:    r,
		OccurredAt: time.Now().UTC(),
	}
}

// PurchaseFailedEvent is emitted when a purchase attempt left all state unchanged.
type PurchaseFailedEvent struct {
	PurchaseID string
	Customer   string
	Product    string
	Quantity   int
	Reason     string
	OccurredAt time.Time
}

func (PurchaseFailedEvent) EventName() string { return "purchase.failed" }

func NewPurchaseFailedEvent(purchaseID, customerName, productName string, quantity int, reason string) PurchaseFailedEvent {
	return PurchaseFailedEvent{
		PurchaseID: purchaseID,
		Customer:   customerName,
		Product:    productName,
		Quantity:   quantity,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
}
