package entities

import "time"

// SaleStatus tracks the accounting document lifecycle: issued, then
// optionally voided.

type SaleStatus string

const (
	SaleStatusEmitida SaleStatus = "emitida"
	SaleStatusAnulada SaleStatus = "anulada"
)

// Sale is the accounting document created per registered payment. It is
// immutable once issued; voiding removes its effect from the cash-register
// total without deleting the row.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the register running total lives in a separate register table keyed
//     by day, maintained with ADD expressions

type Sale struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	OrderNumber int64   `json:"order_number"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`

	// ProviderPaymentID links the charge created at the payment provider
	// for non-cash methods; empty for cash sales.
	ProviderPaymentID string `json:"provider_payment_id,omitempty"`

	Status    SaleStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	VoidedAt  *time.Time `json:"voided_at,omitempty"`
}

func (s Sale) Voided() bool {
	return s.VoidedAt != nil
}
