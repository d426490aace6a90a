package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Reason    string    `json:"reason"`
	QtyBefore int       `json:"qty_before"`
	QtyAfter  int       `json:"qty_after"`
	Delta     int       `json:"delta"`
	Actor     string    `json:"actor,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromStockMovement(m entities.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Reason:    string(m.Reason),
		QtyBefore: m.QtyBefore,
		QtyAfter:  m.QtyAfter,
		Delta:     m.Delta,
		Actor:     m.Actor,
		OrderID:   m.OrderID,
		CreatedAt: m.CreatedAt,
	}
}

func FromStockMovements(movements []entities.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, FromStockMovement(m))
	}
	return out
}
