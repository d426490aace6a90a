package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func partSpec() entities.ItemSpec {
	return entities.ItemSpec{
		Kind:        entities.ItemKindPart,
		ProductID:   "prod-1",
		Description: "Tela display",
		Quantity:    2,
		UnitPrice:   150,
		Discount:    10,
	}
}

func TestOrderItemUseCase_AddItem_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewOrderItemUseCase(nil, nil, nil)
		_, err := uc.AddItem(context.Background(), " ", partSpec(), entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		uc := NewOrderItemUseCase(nil, nil, nil)
		spec := partSpec()
		spec.Description = "  "
		_, err := uc.AddItem(context.Background(), "os-1", spec, entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrEmptyDescription) {
			t.Fatalf("expected ErrEmptyDescription, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewOrderItemUseCase(nil, nil, nil)
		spec := partSpec()
		spec.Quantity = 0
		_, err := uc.AddItem(context.Background(), "os-1", spec, entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		uc := NewOrderItemUseCase(nil, nil, nil)
		spec := partSpec()
		spec.Kind = "subscription"
		_, err := uc.AddItem(context.Background(), "os-1", spec, entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrInvalidItemKind) {
			t.Fatalf("expected ErrInvalidItemKind, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, orderRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.AddItem(context.Background(), "os-1", partSpec(), entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderItemUseCase_AddItem_StockLinkedPart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
	uc := NewOrderItemUseCase(itemRepo, orderRepo, stockRepo)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
	stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 5}, nil)
	itemRepo.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{}), 290.0, gomock.AssignableToTypeOf(&entities.StockAdjustment{})).DoAndReturn(
		func(_ context.Context, item entities.LineItem, totalDelta float64, adj *entities.StockAdjustment) (entities.LineItem, error) {
			if item.ID == "" || item.Total != 290 {
				t.Fatalf("unexpected item: %+v", item)
			}
			if adj.Delta != -2 || adj.QtyBefore != 5 || adj.Reason != entities.StockReasonItemAdd {
				t.Fatalf("unexpected adjustment: %+v", adj)
			}
			if adj.OrderID != "os-1" || adj.Actor != "u1" {
				t.Fatalf("movement attribution missing: %+v", adj)
			}
			return item, nil
		},
	)

	created, err := uc.AddItem(context.Background(), "os-1", partSpec(), entities.Actor{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OrderID != "os-1" || created.Quantity != 2 {
		t.Fatalf("unexpected created item: %+v", created)
	}
}

func TestOrderItemUseCase_AddItem_InsufficientStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
	uc := NewOrderItemUseCase(itemRepo, orderRepo, stockRepo)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
	stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 1}, nil)

	_, err := uc.AddItem(context.Background(), "os-1", partSpec(), entities.Actor{ID: "u1"})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestOrderItemUseCase_AddItem_FreeTextPartSkipsStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
	uc := NewOrderItemUseCase(itemRepo, orderRepo, stockRepo)

	spec := partSpec()
	spec.ProductID = ""

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
	itemRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), 290.0, nil).DoAndReturn(
		func(_ context.Context, item entities.LineItem, _ float64, adj *entities.StockAdjustment) (entities.LineItem, error) {
			if adj != nil {
				t.Fatalf("free-text part must not carry a stock adjustment")
			}
			return item, nil
		},
	)

	if _, err := uc.AddItem(context.Background(), "os-1", spec, entities.Actor{ID: "u1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderItemUseCase_UpdateItem(t *testing.T) {
	existing := entities.LineItem{
		ID:          "item-1",
		OrderID:     "os-1",
		Kind:        entities.ItemKindPart,
		ProductID:   "prod-1",
		Description: "Tela display",
		Quantity:    2,
		UnitPrice:   150,
		Discount:    10,
		Total:       290,
		UpdatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, nil)

		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(entities.LineItem{}, nil)

		_, err := uc.UpdateItem(context.Background(), "os-1", "item-1", partSpec(), entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("binding is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, nil)

		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(existing, nil)

		spec := partSpec()
		spec.ProductID = "prod-2"
		_, err := uc.UpdateItem(context.Background(), "os-1", "item-1", spec, entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrItemBindingImmutable) {
			t.Fatalf("expected ErrItemBindingImmutable, got %v", err)
		}
	})

	t.Run("quantity increase decrements stock by the difference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, stockRepo)

		spec := partSpec()
		spec.Quantity = 5 // was 2

		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(existing, nil)
		stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 8}, nil)
		itemRepo.EXPECT().Update(gomock.Any(), gomock.Any(), 450.0, gomock.Any(), existing.UpdatedAt).DoAndReturn(
			func(_ context.Context, item entities.LineItem, totalDelta float64, adj *entities.StockAdjustment, _ time.Time) (entities.LineItem, error) {
				if adj.Delta != -3 || adj.QtyBefore != 8 || adj.Reason != entities.StockReasonItemUpdate {
					t.Fatalf("unexpected adjustment: %+v", adj)
				}
				if item.Quantity != 5 || item.Total != 740 {
					t.Fatalf("unexpected updated item: %+v", item)
				}
				return item, nil
			},
		)

		saved, err := uc.UpdateItem(context.Background(), "os-1", "item-1", spec, entities.Actor{ID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Total != 740 {
			t.Fatalf("unexpected total: %+v", saved)
		}
	})

	t.Run("quantity decrease returns the difference to stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, stockRepo)

		spec := partSpec()
		spec.Quantity = 1 // was 2

		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(existing, nil)
		stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 0}, nil)
		itemRepo.EXPECT().Update(gomock.Any(), gomock.Any(), -150.0, gomock.Any(), existing.UpdatedAt).DoAndReturn(
			func(_ context.Context, item entities.LineItem, _ float64, adj *entities.StockAdjustment, _ time.Time) (entities.LineItem, error) {
				if adj.Delta != 1 {
					t.Fatalf("expected delta +1, got %+v", adj)
				}
				return item, nil
			},
		)

		if _, err := uc.UpdateItem(context.Background(), "os-1", "item-1", spec, entities.Actor{ID: "u1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("price-only edit skips stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, nil)

		spec := partSpec()
		spec.UnitPrice = 200

		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(existing, nil)
		itemRepo.EXPECT().Update(gomock.Any(), gomock.Any(), 100.0, nil, existing.UpdatedAt).DoAndReturn(
			func(_ context.Context, item entities.LineItem, _ float64, _ *entities.StockAdjustment, _ time.Time) (entities.LineItem, error) {
				return item, nil
			},
		)

		if _, err := uc.UpdateItem(context.Background(), "os-1", "item-1", spec, entities.Actor{ID: "u1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("quantity increase beyond stock reports the shortfall", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, stockRepo)

		spec := partSpec()
		spec.Quantity = 10 // was 2, needs 8 more

		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(existing, nil)
		stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 5}, nil)

		_, err := uc.UpdateItem(context.Background(), "os-1", "item-1", spec, entities.Actor{ID: "u1"})
		var insufficient *InsufficientStockError
		if !errors.As(err, &insufficient) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if insufficient.Available != 5 || insufficient.Requested != 8 {
			t.Fatalf("unexpected shortfall: %+v", insufficient)
		}
	})
}

func TestOrderItemUseCase_UpdateItem_ConcurrentEditRecomputesDeltas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
	stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
	uc := NewOrderItemUseCase(itemRepo, nil, stockRepo)

	stale := entities.LineItem{
		ID:          "item-1",
		OrderID:     "os-1",
		Kind:        entities.ItemKindPart,
		ProductID:   "prod-1",
		Description: "Tela display",
		Quantity:    2,
		UnitPrice:   150,
		Discount:    10,
		Total:       290,
		UpdatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	// Another edit raised the quantity to 3 while the first attempt was in
	// flight, so the first write loses its updated_at condition.
	fresh := stale
	fresh.Quantity = 3
	fresh.Total = 440
	fresh.UpdatedAt = stale.UpdatedAt.Add(time.Second)

	spec := partSpec()
	spec.Quantity = 5

	gomock.InOrder(
		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(stale, nil),
		stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 8}, nil),
		itemRepo.EXPECT().Update(gomock.Any(), gomock.Any(), 450.0, gomock.Any(), stale.UpdatedAt).Return(entities.LineItem{}, interfaces.ErrConditionFailed),
		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(fresh, nil),
		stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 7}, nil),
		itemRepo.EXPECT().Update(gomock.Any(), gomock.Any(), 300.0, gomock.Any(), fresh.UpdatedAt).DoAndReturn(
			func(_ context.Context, item entities.LineItem, totalDelta float64, adj *entities.StockAdjustment, _ time.Time) (entities.LineItem, error) {
				if adj.Delta != -2 || adj.QtyBefore != 7 {
					t.Fatalf("deltas not recomputed from the re-read: %+v", adj)
				}
				return item, nil
			},
		),
	)

	saved, err := uc.UpdateItem(context.Background(), "os-1", "item-1", spec, entities.Actor{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Total != 740 {
		t.Fatalf("unexpected total: %+v", saved)
	}
}

func TestOrderItemUseCase_RemoveItem(t *testing.T) {
	existing := entities.LineItem{
		ID:        "item-1",
		OrderID:   "os-1",
		Kind:      entities.ItemKindPart,
		ProductID: "prod-1",
		Quantity:  2,
		Total:     290,
		UpdatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, nil)

		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(entities.LineItem{}, nil)

		err := uc.RemoveItem(context.Background(), "os-1", "item-1", entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("restores stock and reverses total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, stockRepo)

		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(existing, nil)
		stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 3}, nil)
		itemRepo.EXPECT().Delete(gomock.Any(), "os-1", "item-1", -290.0, gomock.Any(), existing.UpdatedAt).DoAndReturn(
			func(_ context.Context, _, _ string, _ float64, adj *entities.StockAdjustment, _ time.Time) error {
				if adj.Delta != 2 || adj.QtyBefore != 3 || adj.Reason != entities.StockReasonItemRemove {
					t.Fatalf("unexpected adjustment: %+v", adj)
				}
				return nil
			},
		)

		if err := uc.RemoveItem(context.Background(), "os-1", "item-1", entities.Actor{ID: "u1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("service item skips stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, nil)

		svc := entities.LineItem{ID: "item-2", OrderID: "os-1", Kind: entities.ItemKindService, Total: 80}
		itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-2").Return(svc, nil)
		itemRepo.EXPECT().Delete(gomock.Any(), "os-1", "item-2", -80.0, nil, svc.UpdatedAt).Return(nil)

		if err := uc.RemoveItem(context.Background(), "os-1", "item-2", entities.Actor{ID: "u1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost race re-reads the item before reversing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, stockRepo)

		// A concurrent edit raised the quantity to 4 before the delete
		// committed; the reversal must return 4 units, not 2.
		fresh := existing
		fresh.Quantity = 4
		fresh.Total = 590
		fresh.UpdatedAt = existing.UpdatedAt.Add(time.Second)

		gomock.InOrder(
			itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(existing, nil),
			stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 3}, nil),
			itemRepo.EXPECT().Delete(gomock.Any(), "os-1", "item-1", -290.0, gomock.Any(), existing.UpdatedAt).Return(interfaces.ErrConditionFailed),
			itemRepo.EXPECT().GetByID(gomock.Any(), "os-1", "item-1").Return(fresh, nil),
			stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 1}, nil),
			itemRepo.EXPECT().Delete(gomock.Any(), "os-1", "item-1", -590.0, gomock.Any(), fresh.UpdatedAt).DoAndReturn(
				func(_ context.Context, _, _ string, _ float64, adj *entities.StockAdjustment, _ time.Time) error {
					if adj.Delta != 4 || adj.QtyBefore != 1 {
						t.Fatalf("reversal not recomputed from the re-read: %+v", adj)
					}
					return nil
				},
			),
		)

		if err := uc.RemoveItem(context.Background(), "os-1", "item-1", entities.Actor{ID: "u1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderItemUseCase_StockConflictRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
	uc := NewOrderItemUseCase(itemRepo, orderRepo, stockRepo)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
	stockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(entities.ProductStock{ProductID: "prod-1", Quantity: 5}, nil).Times(stockApplyAttempts)
	itemRepo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.LineItem{}, interfaces.ErrConditionFailed).Times(stockApplyAttempts)

	_, err := uc.AddItem(context.Background(), "os-1", partSpec(), entities.Actor{ID: "u1"})
	if !errors.Is(err, ErrStockConflict) {
		t.Fatalf("expected ErrStockConflict, got %v", err)
	}
}

func TestOrderItemUseCase_ListItems(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewOrderItemUseCase(nil, nil, nil)
		_, err := uc.ListItems(context.Background(), " ")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewOrderItemUseCase(itemRepo, nil, nil)

		itemRepo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.LineItem{{ID: "item-1"}}, nil)

		res, err := uc.ListItems(context.Background(), " os-1 ")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
