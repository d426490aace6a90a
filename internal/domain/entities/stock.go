package entities

import "time"

// StockReason is the reason code recorded with every stock movement.

type StockReason string

const (
	StockReasonItemAdd      StockReason = "order-item-add"
	StockReasonItemUpdate   StockReason = "order-item-update"
	StockReasonItemRemove   StockReason = "order-item-remove"
	StockReasonManualAdjust StockReason = "manual-adjust"
)

// ProductStock is the authoritative inventory counter for one catalog
// product. The catalog itself is external; this core only owns the
// quantity and its movement history.
//
// Storage model (DynamoDB):
//   - PK: product_id
//   - quantity is a number so the compare-and-swap condition can be
//     expressed against it

type ProductStock struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockMovement is one append-only audit row. Created in the same
// transaction as the quantity change it describes.
//
// Storage model (DynamoDB):
//   - PK: product_id, SK: id

type StockMovement struct {
	ID        string      `json:"id"`
	ProductID string      `json:"product_id"`
	Reason    StockReason `json:"reason"`
	QtyBefore int         `json:"qty_before"`
	QtyAfter  int         `json:"qty_after"`
	Delta     int         `json:"delta"`
	Actor     string      `json:"actor"`
	OrderID   string      `json:"order_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// StockAdjustment is the command applied through the stock ledger. The
// expected before-quantity makes the write a compare-and-swap: the
// repository only applies it while the counter still holds QtyBefore.
type StockAdjustment struct {
	ProductID string
	Delta     int
	QtyBefore int
	Reason    StockReason
	Actor     string
	OrderID   string
}

func (a StockAdjustment) QtyAfter() int {
	return a.QtyBefore + a.Delta
}
