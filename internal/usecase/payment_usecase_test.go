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

func paymentInput() PaymentInput {
	return PaymentInput{Amount: 100, Method: "pix", Kind: entities.PaymentKindAdvance}
}

func newPaymentUC(repo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, sales interfaces.ISalesService, authz interfaces.IAuthorizationService, idem interfaces.IIdempotencyStore) *PaymentUseCase {
	return NewPaymentUseCase(repo, orderRepo, sales, authz, nil, idem, entities.DefaultPaymentMethods())
}

func TestPaymentUseCase_Register_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := newPaymentUC(nil, nil, nil, nil, nil)
		_, err := uc.Register(context.Background(), " ", paymentInput(), entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := newPaymentUC(nil, nil, nil, nil, nil)
		input := paymentInput()
		input.Amount = 0
		_, err := uc.Register(context.Background(), "os-1", input, entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		uc := newPaymentUC(nil, nil, nil, nil, nil)
		input := paymentInput()
		input.Method = "cheque"
		_, err := uc.Register(context.Background(), "os-1", input, entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		uc := newPaymentUC(nil, nil, nil, nil, nil)
		input := paymentInput()
		input.Kind = "parcial"
		_, err := uc.Register(context.Background(), "os-1", input, entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrInvalidPaymentKind) {
			t.Fatalf("expected ErrInvalidPaymentKind, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newPaymentUC(nil, orderRepo, nil, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.Register(context.Background(), "os-1", paymentInput(), entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	sales := mock_interfaces.NewMockISalesService(ctrl)
	uc := newPaymentUC(repo, orderRepo, sales, nil, nil)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)
	sales.EXPECT().CreateSale(gomock.Any(), "os-1", int64(42), "Pagamento OS #42 - Entrada", 100.0, "pix").Return(entities.Sale{ID: "sale-1"}, nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.ID == "" || p.SaleID != "sale-1" || p.OrderID != "os-1" {
				t.Fatalf("unexpected payment: %+v", p)
			}
			if p.CreatedBy != "u1" || p.CreatedAt.IsZero() {
				t.Fatalf("attribution missing: %+v", p)
			}
			return p, nil
		},
	)

	created, err := uc.Register(context.Background(), "os-1", paymentInput(), entities.Actor{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Amount != 100 || created.Kind != entities.PaymentKindAdvance {
		t.Fatalf("unexpected created payment: %+v", created)
	}
}

func TestPaymentUseCase_Register_SaleFailureBlocksPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	sales := mock_interfaces.NewMockISalesService(ctrl)
	uc := newPaymentUC(repo, orderRepo, sales, nil, nil)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)
	sales.EXPECT().CreateSale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Sale{}, errors.New("register offline"))

	_, err := uc.Register(context.Background(), "os-1", paymentInput(), entities.Actor{ID: "u1"})
	if err == nil || err.Error() != "register offline" {
		t.Fatalf("expected register offline, got %v", err)
	}
}

func TestPaymentUseCase_Register_PersistFailureVoidsSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	sales := mock_interfaces.NewMockISalesService(ctrl)
	uc := newPaymentUC(repo, orderRepo, sales, nil, nil)

	orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)
	sales.EXPECT().CreateSale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Sale{ID: "sale-1"}, nil)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db"))
	sales.EXPECT().VoidSale(gomock.Any(), "sale-1").Return(nil)

	_, err := uc.Register(context.Background(), "os-1", paymentInput(), entities.Actor{ID: "u1"})
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestPaymentUseCase_Register_Idempotency(t *testing.T) {
	t.Run("duplicate key rejected before any side effect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		idem := mock_interfaces.NewMockIIdempotencyStore(ctrl)
		uc := newPaymentUC(nil, orderRepo, nil, nil, idem)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)
		idem.EXPECT().Reserve(gomock.Any(), "key-1").Return(false, nil)

		input := paymentInput()
		input.IdempotencyKey = "key-1"
		_, err := uc.Register(context.Background(), "os-1", input, entities.Actor{ID: "u1"})
		if !errors.Is(err, ErrDuplicatePayment) {
			t.Fatalf("expected ErrDuplicatePayment, got %v", err)
		}
	})

	t.Run("fresh key proceeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		sales := mock_interfaces.NewMockISalesService(ctrl)
		idem := mock_interfaces.NewMockIIdempotencyStore(ctrl)
		uc := newPaymentUC(repo, orderRepo, sales, nil, idem)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)
		idem.EXPECT().Reserve(gomock.Any(), "key-1").Return(true, nil)
		sales.EXPECT().CreateSale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Sale{ID: "sale-1"}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)

		input := paymentInput()
		input.IdempotencyKey = "key-1"
		if _, err := uc.Register(context.Background(), "os-1", input, entities.Actor{ID: "u1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sale failure releases the key for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		sales := mock_interfaces.NewMockISalesService(ctrl)
		idem := mock_interfaces.NewMockIIdempotencyStore(ctrl)
		uc := newPaymentUC(nil, orderRepo, sales, nil, idem)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)
		idem.EXPECT().Reserve(gomock.Any(), "key-1").Return(true, nil)
		sales.EXPECT().CreateSale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Sale{}, errors.New("register offline"))
		idem.EXPECT().Release(gomock.Any(), "key-1").Return(nil)

		input := paymentInput()
		input.IdempotencyKey = "key-1"
		_, err := uc.Register(context.Background(), "os-1", input, entities.Actor{ID: "u1"})
		if err == nil || err.Error() != "register offline" {
			t.Fatalf("expected register offline, got %v", err)
		}
	})

	t.Run("persist failure voids the sale and releases the key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		sales := mock_interfaces.NewMockISalesService(ctrl)
		idem := mock_interfaces.NewMockIIdempotencyStore(ctrl)
		uc := newPaymentUC(repo, orderRepo, sales, nil, idem)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)
		idem.EXPECT().Reserve(gomock.Any(), "key-1").Return(true, nil)
		sales.EXPECT().CreateSale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Sale{ID: "sale-1"}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db"))
		sales.EXPECT().VoidSale(gomock.Any(), "sale-1").Return(nil)
		idem.EXPECT().Release(gomock.Any(), "key-1").Return(nil)

		input := paymentInput()
		input.IdempotencyKey = "key-1"
		_, err := uc.Register(context.Background(), "os-1", input, entities.Actor{ID: "u1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPaymentUseCase_Cancel(t *testing.T) {
	now := time.Now().UTC()
	active := entities.Payment{ID: "pay-1", OrderID: "os-1", Amount: 100, SaleID: "sale-1", CreatedAt: now}

	t.Run("unprivileged actor denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authz := mock_interfaces.NewMockIAuthorizationService(ctrl)
		uc := newPaymentUC(nil, nil, nil, authz, nil)

		authz.EXPECT().IsPrivileged(entities.Actor{ID: "u1", Role: "atendente"}).Return(false)

		_, err := uc.Cancel(context.Background(), "pay-1", entities.Actor{ID: "u1", Role: "atendente"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		authz := mock_interfaces.NewMockIAuthorizationService(ctrl)
		uc := newPaymentUC(repo, nil, nil, authz, nil)

		authz.EXPECT().IsPrivileged(gomock.Any()).Return(true)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := uc.Cancel(context.Background(), "pay-1", entities.Actor{ID: "adm", Role: entities.RoleAdmin})
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		authz := mock_interfaces.NewMockIAuthorizationService(ctrl)
		uc := newPaymentUC(repo, nil, nil, authz, nil)

		cancelled := active
		cancelled.CancelledAt = &now
		authz.EXPECT().IsPrivileged(gomock.Any()).Return(true)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(cancelled, nil)

		_, err := uc.Cancel(context.Background(), "pay-1", entities.Actor{ID: "adm", Role: entities.RoleAdmin})
		if !errors.Is(err, ErrAlreadyCancelled) {
			t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
		}
	})

	t.Run("lost cancellation race maps to already cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		sales := mock_interfaces.NewMockISalesService(ctrl)
		authz := mock_interfaces.NewMockIAuthorizationService(ctrl)
		uc := newPaymentUC(repo, nil, sales, authz, nil)

		authz.EXPECT().IsPrivileged(gomock.Any()).Return(true)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(active, nil)
		sales.EXPECT().VoidSale(gomock.Any(), "sale-1").Return(nil)
		repo.EXPECT().MarkCancelled(gomock.Any(), "pay-1", "os-1", 100.0, "adm", gomock.Any()).Return(entities.Payment{}, interfaces.ErrConditionFailed)

		_, err := uc.Cancel(context.Background(), "pay-1", entities.Actor{ID: "adm", Role: entities.RoleAdmin})
		if !errors.Is(err, ErrAlreadyCancelled) {
			t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
		}
	})

	t.Run("success voids sale then marks payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		sales := mock_interfaces.NewMockISalesService(ctrl)
		authz := mock_interfaces.NewMockIAuthorizationService(ctrl)
		uc := newPaymentUC(repo, orderRepo, sales, authz, nil)

		authz.EXPECT().IsPrivileged(gomock.Any()).Return(true)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(active, nil)
		sales.EXPECT().VoidSale(gomock.Any(), "sale-1").Return(nil)
		repo.EXPECT().MarkCancelled(gomock.Any(), "pay-1", "os-1", 100.0, "adm", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, _ float64, actor string, at time.Time) (entities.Payment, error) {
				p := active
				p.CancelledAt = &at
				p.CancelledBy = actor
				return p, nil
			},
		)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)

		res, err := uc.Cancel(context.Background(), "pay-1", entities.Actor{ID: "adm", Role: entities.RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Cancelled() || res.CancelledBy != "adm" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("transient mark failure retries after the sale is voided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		sales := mock_interfaces.NewMockISalesService(ctrl)
		authz := mock_interfaces.NewMockIAuthorizationService(ctrl)
		uc := newPaymentUC(repo, orderRepo, sales, authz, nil)

		authz.EXPECT().IsPrivileged(gomock.Any()).Return(true)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(active, nil)
		sales.EXPECT().VoidSale(gomock.Any(), "sale-1").Return(nil)
		gomock.InOrder(
			repo.EXPECT().MarkCancelled(gomock.Any(), "pay-1", "os-1", 100.0, "adm", gomock.Any()).Return(entities.Payment{}, errors.New("throttled")),
			repo.EXPECT().MarkCancelled(gomock.Any(), "pay-1", "os-1", 100.0, "adm", gomock.Any()).DoAndReturn(
				func(_ context.Context, _, _ string, _ float64, actor string, at time.Time) (entities.Payment, error) {
					p := active
					p.CancelledAt = &at
					p.CancelledBy = actor
					return p, nil
				},
			),
		)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Number: 42}, nil)

		res, err := uc.Cancel(context.Background(), "pay-1", entities.Actor{ID: "adm", Role: entities.RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Cancelled() {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("persistent mark failure surfaces after voiding once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		sales := mock_interfaces.NewMockISalesService(ctrl)
		authz := mock_interfaces.NewMockIAuthorizationService(ctrl)
		uc := newPaymentUC(repo, nil, sales, authz, nil)

		authz.EXPECT().IsPrivileged(gomock.Any()).Return(true)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(active, nil)
		sales.EXPECT().VoidSale(gomock.Any(), "sale-1").Return(nil).Times(1)
		repo.EXPECT().MarkCancelled(gomock.Any(), "pay-1", "os-1", 100.0, "adm", gomock.Any()).Return(entities.Payment{}, errors.New("table offline")).Times(2)

		_, err := uc.Cancel(context.Background(), "pay-1", entities.Actor{ID: "adm", Role: entities.RoleAdmin})
		if err == nil || err.Error() != "table offline" {
			t.Fatalf("expected table offline, got %v", err)
		}
	})

	t.Run("sale void failure aborts cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		sales := mock_interfaces.NewMockISalesService(ctrl)
		authz := mock_interfaces.NewMockIAuthorizationService(ctrl)
		uc := newPaymentUC(repo, nil, sales, authz, nil)

		authz.EXPECT().IsPrivileged(gomock.Any()).Return(true)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(active, nil)
		sales.EXPECT().VoidSale(gomock.Any(), "sale-1").Return(errors.New("register offline"))

		_, err := uc.Cancel(context.Background(), "pay-1", entities.Actor{ID: "adm", Role: entities.RoleAdmin})
		if err == nil || err.Error() != "register offline" {
			t.Fatalf("expected register offline, got %v", err)
		}
	})
}

func TestPaymentUseCase_Balance(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newPaymentUC(nil, orderRepo, nil, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.Balance(context.Background(), "os-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("cancelled payments are excluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newPaymentUC(repo, orderRepo, nil, nil, nil)

		now := time.Now().UTC()
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Total: 500, PaidTotal: 150}, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.Payment{
			{ID: "pay-1", Amount: 100},
			{ID: "pay-2", Amount: 50},
			{ID: "pay-3", Amount: 200, CancelledAt: &now},
		}, nil)

		sum, err := uc.Balance(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.PaidTotal != 150 || sum.Balance != 350 {
			t.Fatalf("unexpected summary: %+v", sum)
		}
	})

	t.Run("overpayment yields negative balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newPaymentUC(repo, orderRepo, nil, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Total: 100, PaidTotal: 150}, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.Payment{{ID: "pay-1", Amount: 150}}, nil)

		sum, err := uc.Balance(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.Balance != -50 {
			t.Fatalf("expected balance -50, got %+v", sum)
		}
	})
}

func TestPaymentUseCase_ListByOrderID(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := newPaymentUC(nil, nil, nil, nil, nil)
		_, err := uc.ListByOrderID(context.Background(), " ")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := newPaymentUC(repo, nil, nil, nil, nil)

		repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)

		res, err := uc.ListByOrderID(context.Background(), " os-1 ")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
