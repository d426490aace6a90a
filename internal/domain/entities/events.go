package entities

import "time"

// EventType names the domain events published after a committed state
// change. Notification and print consumers subscribe to these instead of
// being called inside the transaction.

type EventType string

const (
	EventOrderCreated       EventType = "order-created"
	EventOrderStatusChanged EventType = "order-status-changed"
	EventOrderFinalized     EventType = "order-finalized"
	EventPaymentRegistered  EventType = "payment-registered"
	EventPaymentCancelled   EventType = "payment-cancelled"
)

// DomainEvent is the envelope written to the event topic.
type DomainEvent struct {
	Type        EventType   `json:"type"`
	OrderID     string      `json:"order_id"`
	OrderNumber int64       `json:"order_number"`
	Status      OrderStatus `json:"status,omitempty"`
	PaymentID   string      `json:"payment_id,omitempty"`
	Amount      float64     `json:"amount,omitempty"`
	Actor       string      `json:"actor,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}
