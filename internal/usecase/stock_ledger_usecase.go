package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidStockDelta = errors.New("invalid stock delta")
	ErrStockConflict     = errors.New("concurrent stock update, retry")
)

// ErrInsufficientStock is the errors.Is target for InsufficientStockError.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports the exact shortfall so the caller can show
// requested vs available.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// IStockLedgerUseCase is the only path by which stock quantities change.
//
// Adjust reads the counter, validates the resulting quantity is not
// negative and applies a compare-and-swap plus movement-log append through
// the repository. A lost race re-reads and retries a few times before
// giving up.

type IStockLedgerUseCase interface {
	Adjust(ctx context.Context, productID string, delta int, reason entities.StockReason, actor entities.Actor, orderID string) (entities.StockMovement, error)
	Movements(ctx context.Context, productID string) ([]entities.StockMovement, error)
}

type StockLedgerUseCase struct {
	repo interfaces.IStockRepository
}

var _ IStockLedgerUseCase = (*StockLedgerUseCase)(nil)

func NewStockLedgerUseCase(repo interfaces.IStockRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{repo: repo}
}

const stockApplyAttempts = 3

func (u *StockLedgerUseCase) Adjust(ctx context.Context, productID string, delta int, reason entities.StockReason, actor entities.Actor, orderID string) (entities.StockMovement, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.StockMovement{}, ErrProductNotFound
	}
	if delta == 0 {
		return entities.StockMovement{}, ErrInvalidStockDelta
	}

	for attempt := 1; attempt <= stockApplyAttempts; attempt++ {
		stock, err := u.repo.Get(ctx, productID)
		if err != nil {
			return entities.StockMovement{}, err
		}
		if stock.ProductID == "" {
			return entities.StockMovement{}, ErrProductNotFound
		}
		if stock.Quantity+delta < 0 {
			return entities.StockMovement{}, &InsufficientStockError{
				ProductID: productID,
				Available: stock.Quantity,
				Requested: -delta,
			}
		}

		mv, err := u.repo.Apply(ctx, entities.StockAdjustment{
			ProductID: productID,
			Delta:     delta,
			QtyBefore: stock.Quantity,
			Reason:    reason,
			Actor:     actor.ID,
			OrderID:   orderID,
		})
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[stock][usecase] adjust conflict product_id=%s attempt=%d", productID, attempt)
			continue
		}
		if err != nil {
			return entities.StockMovement{}, err
		}
		log.Printf("[stock][usecase] adjust success product_id=%s delta=%d qty_before=%d qty_after=%d reason=%s", productID, delta, mv.QtyBefore, mv.QtyAfter, reason)
		return mv, nil
	}

	return entities.StockMovement{}, ErrStockConflict
}

func (u *StockLedgerUseCase) Movements(ctx context.Context, productID string) ([]entities.StockMovement, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrProductNotFound
	}
	return u.repo.ListMovements(ctx, productID)
}
