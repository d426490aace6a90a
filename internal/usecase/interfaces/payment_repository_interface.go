package interfaces

import (
	"context"
	"time"

	"oficina_os/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Insert also increments the order's paid total; MarkCancelled sets the
// cancellation fields and decrements the paid total. Both are single
// transactions. MarkCancelled is conditional on the payment not being
// cancelled yet, so a double cancel races to exactly one winner and the
// loser sees ErrConditionFailed.

type IPaymentRepository interface {
	Insert(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	MarkCancelled(ctx context.Context, paymentID, orderID string, amount float64, actor string, at time.Time) (entities.Payment, error)
}
