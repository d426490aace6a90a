package request

// PaymentRequest registers one payment (deposit or final) against an order.
// IdempotencyKey is optional; a repeated key is rejected as a duplicate.
type PaymentRequest struct {
	Amount         float64 `json:"amount" binding:"required"`
	Method         string  `json:"method" binding:"required"`
	Kind           string  `json:"kind" binding:"required"`
	Note           string  `json:"note"`
	IdempotencyKey string  `json:"idempotency_key"`
}
