package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound         = errors.New("line item not found")
	ErrEmptyDescription     = errors.New("item description cannot be empty")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrInvalidItemKind      = errors.New("invalid item kind")
	ErrItemBindingImmutable = errors.New("item kind and product cannot change on update")
)

// IOrderItemUseCase owns the line items of a service order. Every mutation
// of a stock-linked part goes through the stock ledger's compare-and-swap
// in the same transaction as the item write, so the order can never
// oversell inventory or leave a half-applied edit behind.

type IOrderItemUseCase interface {
	AddItem(ctx context.Context, orderID string, spec entities.ItemSpec, actor entities.Actor) (entities.LineItem, error)
	UpdateItem(ctx context.Context, orderID, itemID string, spec entities.ItemSpec, actor entities.Actor) (entities.LineItem, error)
	RemoveItem(ctx context.Context, orderID, itemID string, actor entities.Actor) error
	ListItems(ctx context.Context, orderID string) ([]entities.LineItem, error)
}

type OrderItemUseCase struct {
	itemRepo  interfaces.ILineItemRepository
	orderRepo interfaces.IOrderRepository
	stockRepo interfaces.IStockRepository
}

var _ IOrderItemUseCase = (*OrderItemUseCase)(nil)

func NewOrderItemUseCase(itemRepo interfaces.ILineItemRepository, orderRepo interfaces.IOrderRepository, stockRepo interfaces.IStockRepository) *OrderItemUseCase {
	return &OrderItemUseCase{itemRepo: itemRepo, orderRepo: orderRepo, stockRepo: stockRepo}
}

func (u *OrderItemUseCase) AddItem(ctx context.Context, orderID string, spec entities.ItemSpec, actor entities.Actor) (entities.LineItem, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.LineItem{}, ErrOrderNotFound
	}
	if err := validateItemSpec(spec); err != nil {
		return entities.LineItem{}, err
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if order.ID == "" {
		return entities.LineItem{}, ErrOrderNotFound
	}

	now := time.Now().UTC()
	item := entities.LineItem{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		Kind:         spec.Kind,
		ProductID:    strings.TrimSpace(spec.ProductID),
		Description:  strings.TrimSpace(spec.Description),
		Quantity:     spec.Quantity,
		UnitPrice:    spec.UnitPrice,
		MinPrice:     spec.MinPrice,
		Discount:     spec.Discount,
		WarrantyDays: spec.WarrantyDays,
		SupplierID:   strings.TrimSpace(spec.SupplierID),
		Total:        spec.LineTotal(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if !item.TracksStock() {
		created, err := u.itemRepo.Insert(ctx, item, item.Total, nil)
		if err != nil {
			return entities.LineItem{}, err
		}
		log.Printf("[item][usecase] add success order_id=%s item_id=%s kind=%s (no stock link)", orderID, created.ID, created.Kind)
		return created, nil
	}

	var created entities.LineItem
	err = u.withStockCAS(ctx, item.ProductID, -item.Quantity, entities.StockReasonItemAdd, actor, orderID, func(adj *entities.StockAdjustment) error {
		var err error
		created, err = u.itemRepo.Insert(ctx, item, item.Total, adj)
		return err
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	log.Printf("[item][usecase] add success order_id=%s item_id=%s product_id=%s qty=%d", orderID, created.ID, item.ProductID, item.Quantity)
	return created, nil
}

// UpdateItem recomputes the stock and total deltas from a fresh read on
// every attempt. The repository conditions the item write on the read's
// updated_at, so deltas computed against a version that another edit
// already replaced can never land; the lost race surfaces as
// ErrConditionFailed and the loop starts over.
func (u *OrderItemUseCase) UpdateItem(ctx context.Context, orderID, itemID string, spec entities.ItemSpec, actor entities.Actor) (entities.LineItem, error) {
	if err := validateItemSpec(spec); err != nil {
		return entities.LineItem{}, err
	}

	for attempt := 1; attempt <= stockApplyAttempts; attempt++ {
		item, err := u.itemRepo.GetByID(ctx, orderID, itemID)
		if err != nil {
			return entities.LineItem{}, err
		}
		if item.ID == "" {
			return entities.LineItem{}, ErrItemNotFound
		}
		if spec.Kind != item.Kind || strings.TrimSpace(spec.ProductID) != item.ProductID {
			return entities.LineItem{}, ErrItemBindingImmutable
		}

		updated := item
		updated.Description = strings.TrimSpace(spec.Description)
		updated.Quantity = spec.Quantity
		updated.UnitPrice = spec.UnitPrice
		updated.MinPrice = spec.MinPrice
		updated.Discount = spec.Discount
		updated.WarrantyDays = spec.WarrantyDays
		updated.SupplierID = strings.TrimSpace(spec.SupplierID)
		updated.Total = spec.LineTotal()
		updated.UpdatedAt = time.Now().UTC()

		totalDelta := updated.Total - item.Total

		// Increasing the order quantity decrements more stock, decreasing it
		// returns the difference.
		stockDelta := item.Quantity - spec.Quantity

		var adj *entities.StockAdjustment
		if item.TracksStock() && stockDelta != 0 {
			adj, err = u.stockAdjustment(ctx, item.ProductID, stockDelta, entities.StockReasonItemUpdate, actor, orderID)
			if err != nil {
				return entities.LineItem{}, err
			}
		}

		saved, err := u.itemRepo.Update(ctx, updated, totalDelta, adj, item.UpdatedAt)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[item][usecase] update conflict order_id=%s item_id=%s attempt=%d", orderID, itemID, attempt)
			continue
		}
		if err != nil {
			return entities.LineItem{}, err
		}
		log.Printf("[item][usecase] update success order_id=%s item_id=%s stock_delta=%d", orderID, itemID, stockDelta)
		return saved, nil
	}
	return entities.LineItem{}, ErrStockConflict
}

func (u *OrderItemUseCase) RemoveItem(ctx context.Context, orderID, itemID string, actor entities.Actor) error {
	for attempt := 1; attempt <= stockApplyAttempts; attempt++ {
		item, err := u.itemRepo.GetByID(ctx, orderID, itemID)
		if err != nil {
			return err
		}
		if item.ID == "" {
			return ErrItemNotFound
		}

		// Removing the item returns the full original decrement to stock.
		var adj *entities.StockAdjustment
		if item.TracksStock() {
			adj, err = u.stockAdjustment(ctx, item.ProductID, item.Quantity, entities.StockReasonItemRemove, actor, orderID)
			if err != nil {
				return err
			}
		}

		err = u.itemRepo.Delete(ctx, orderID, itemID, -item.Total, adj, item.UpdatedAt)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[item][usecase] remove conflict order_id=%s item_id=%s attempt=%d", orderID, itemID, attempt)
			continue
		}
		if err != nil {
			return err
		}
		log.Printf("[item][usecase] remove success order_id=%s item_id=%s restored_qty=%d", orderID, itemID, item.Quantity)
		return nil
	}
	return ErrStockConflict
}

func (u *OrderItemUseCase) ListItems(ctx context.Context, orderID string) ([]entities.LineItem, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	return u.itemRepo.ListByOrderID(ctx, orderID)
}

// withStockCAS reads the product counter, checks the resulting quantity
// and hands the adjustment to commit, retrying on a lost compare-and-swap.
// commit runs the repository transaction, so item write and stock change
// land together or not at all.
func (u *OrderItemUseCase) withStockCAS(ctx context.Context, productID string, delta int, reason entities.StockReason, actor entities.Actor, orderID string, commit func(adj *entities.StockAdjustment) error) error {
	for attempt := 1; attempt <= stockApplyAttempts; attempt++ {
		adj, err := u.stockAdjustment(ctx, productID, delta, reason, actor, orderID)
		if err != nil {
			return err
		}

		err = commit(adj)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[item][usecase] stock conflict product_id=%s attempt=%d", productID, attempt)
			continue
		}
		return err
	}
	return ErrStockConflict
}

// stockAdjustment reads the product counter and builds the adjustment for
// one attempt, rejecting deltas that would drive the quantity negative.
func (u *OrderItemUseCase) stockAdjustment(ctx context.Context, productID string, delta int, reason entities.StockReason, actor entities.Actor, orderID string) (*entities.StockAdjustment, error) {
	stock, err := u.stockRepo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if stock.ProductID == "" {
		return nil, ErrProductNotFound
	}
	if stock.Quantity+delta < 0 {
		return nil, &InsufficientStockError{
			ProductID: productID,
			Available: stock.Quantity,
			Requested: -delta,
		}
	}
	return &entities.StockAdjustment{
		ProductID: productID,
		Delta:     delta,
		QtyBefore: stock.Quantity,
		Reason:    reason,
		Actor:     actor.ID,
		OrderID:   orderID,
	}, nil
}

func validateItemSpec(spec entities.ItemSpec) error {
	if strings.TrimSpace(spec.Description) == "" {
		return ErrEmptyDescription
	}
	if spec.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !spec.Kind.Valid() {
		return ErrInvalidItemKind
	}
	return nil
}
