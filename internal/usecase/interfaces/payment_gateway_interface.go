package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The sales register uses it to charge non-cash sales and to cancel the
// provider charge when a sale is voided.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	CancelPayment(ctx context.Context, providerPaymentID string) error
}
