package interfaces

import (
	"context"
	"time"

	"oficina_os/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for LineItem.
//
// Insert/Update/Delete take the order-total delta and an optional stock
// adjustment and commit everything in one transaction: the item write, the
// additive order-total update, the product-quantity compare-and-swap and
// the movement-log append either all land or none do. Update and Delete
// also condition the item write on prevUpdatedAt, the updated_at the
// caller read its deltas from, so a concurrent edit of the same item
// fails the whole transaction instead of committing deltas computed
// against stale state. Any failed condition surfaces as ErrConditionFailed
// with no partial state. The total is adjusted with an ADD expression so
// concurrent item mutations on the same order cannot lose updates.

type ILineItemRepository interface {
	GetByID(ctx context.Context, orderID, itemID string) (entities.LineItem, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.LineItem, error)
	Insert(ctx context.Context, item entities.LineItem, totalDelta float64, adj *entities.StockAdjustment) (entities.LineItem, error)
	Update(ctx context.Context, item entities.LineItem, totalDelta float64, adj *entities.StockAdjustment, prevUpdatedAt time.Time) (entities.LineItem, error)
	Delete(ctx context.Context, orderID, itemID string, totalDelta float64, adj *entities.StockAdjustment, prevUpdatedAt time.Time) error
}
