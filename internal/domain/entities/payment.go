package entities

import "time"

// PaymentKind distinguishes a deposit taken up front from the settlement on
// pickup.

type PaymentKind string

const (
	PaymentKindAdvance PaymentKind = "entrada"
	PaymentKindFinal   PaymentKind = "final"
)

func (k PaymentKind) Valid() bool {
	return k == PaymentKindAdvance || k == PaymentKindFinal
}

// Label is the human-readable kind used on the sale document line.
func (k PaymentKind) Label() string {
	if k == PaymentKindAdvance {
		return "Entrada"
	}
	return "Final"
}

// Payment is one payment registered against a service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (order_id-index): order_id
//
// A payment is immutable once created except for the cancellation fields;
// cancelling reverses the linked sale document and the order's paid total.

type Payment struct {
	ID      string      `json:"id"`
	OrderID string      `json:"order_id"`
	Amount  float64     `json:"amount"`
	Method  string      `json:"method"`
	Kind    PaymentKind `json:"kind"`
	Note    string      `json:"note,omitempty"`
	SaleID  string      `json:"sale_id"`

	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy string     `json:"cancelled_by,omitempty"`
}

func (p Payment) Cancelled() bool {
	return p.CancelledAt != nil
}

// PaymentMethods is the injected set of accepted payment methods.
type PaymentMethods struct {
	Methods []string
}

func (m PaymentMethods) Valid(method string) bool {
	for _, v := range m.Methods {
		if v == method {
			return true
		}
	}
	return false
}

func DefaultPaymentMethods() PaymentMethods {
	return PaymentMethods{Methods: []string{
		"dinheiro",
		"pix",
		"cartao_credito",
		"cartao_debito",
	}}
}
