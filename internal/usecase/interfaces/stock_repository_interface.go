package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IStockRepository abstracts DynamoDB persistence for product stock and its
// movement log. This is the single serialization point for quantity
// changes: Apply commits the compare-and-swap on the counter and the
// movement-log append in one transaction, failing with ErrConditionFailed
// when the counter no longer holds the adjustment's expected quantity.

type IStockRepository interface {
	Get(ctx context.Context, productID string) (entities.ProductStock, error)
	Apply(ctx context.Context, adj entities.StockAdjustment) (entities.StockMovement, error)
	ListMovements(ctx context.Context, productID string) ([]entities.StockMovement, error)
}
