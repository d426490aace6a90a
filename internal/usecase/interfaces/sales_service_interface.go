package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// ISalesService abstracts the accounting-document collaborator. Every
// registered payment issues one sale; cancelling the payment voids it,
// which reverses its effect on the cash-register total.
type ISalesService interface {
	CreateSale(ctx context.Context, orderID string, orderNumber int64, description string, amount float64, method string) (entities.Sale, error)
	VoidSale(ctx context.Context, saleID string) error
}
