package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID string  `json:"payment_id"`
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Kind      string  `json:"kind"`
	Note      string  `json:"note,omitempty"`
	SaleID    string  `json:"sale_id"`
	Cancelled bool    `json:"cancelled"`

	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy string     `json:"cancelled_by,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.ID,
		ID:          p.ID,
		OrderID:     p.OrderID,
		Amount:      p.Amount,
		Method:      p.Method,
		Kind:        string(p.Kind),
		Note:        p.Note,
		SaleID:      p.SaleID,
		Cancelled:   p.Cancelled(),
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		CancelledAt: p.CancelledAt,
		CancelledBy: p.CancelledBy,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
