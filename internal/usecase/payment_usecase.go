package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidAmount        = errors.New("payment amount must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidPaymentKind   = errors.New("invalid payment kind")
	ErrAlreadyCancelled     = errors.New("payment already cancelled")
	ErrUnauthorized         = errors.New("actor not allowed to cancel payments")
	ErrDuplicatePayment     = errors.New("duplicate payment (idempotency key already used)")
)

// PaymentInput is the register-payment command.
type PaymentInput struct {
	Amount         float64
	Method         string
	Kind           entities.PaymentKind
	Note           string
	IdempotencyKey string
}

// BalanceSummary is the recomputed financial position of one order.
type BalanceSummary struct {
	OrderID   string  `json:"order_id"`
	Total     float64 `json:"total"`
	PaidTotal float64 `json:"paid_total"`
	Balance   float64 `json:"balance"`
}

// IPaymentUseCase owns the payment ledger of a service order.
//
// Register issues the sale document first and only then persists the
// payment plus the paid-total increment as one transaction; a failed
// persist voids the sale again so no accounting document floats without a
// payment. Cancel is admin-gated and reverses exactly once.

type IPaymentUseCase interface {
	Register(ctx context.Context, orderID string, input PaymentInput, actor entities.Actor) (entities.Payment, error)
	Cancel(ctx context.Context, paymentID string, actor entities.Actor) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	Balance(ctx context.Context, orderID string) (BalanceSummary, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IOrderRepository
	sales     interfaces.ISalesService
	authz     interfaces.IAuthorizationService
	publisher interfaces.IEventPublisher
	idem      interfaces.IIdempotencyStore
	methods   entities.PaymentMethods
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	orderRepo interfaces.IOrderRepository,
	sales interfaces.ISalesService,
	authz interfaces.IAuthorizationService,
	publisher interfaces.IEventPublisher,
	idem interfaces.IIdempotencyStore,
	methods entities.PaymentMethods,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:      repo,
		orderRepo: orderRepo,
		sales:     sales,
		authz:     authz,
		publisher: publisher,
		idem:      idem,
		methods:   methods,
	}
}

func (u *PaymentUseCase) Register(ctx context.Context, orderID string, input PaymentInput, actor entities.Actor) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}
	if input.Amount <= 0 {
		return entities.Payment{}, ErrInvalidAmount
	}
	if !u.methods.Valid(input.Method) {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	if !input.Kind.Valid() {
		return entities.Payment{}, ErrInvalidPaymentKind
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}

	idemKey := ""
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" && u.idem != nil {
		ok, err := u.idem.Reserve(ctx, key)
		if err != nil {
			return entities.Payment{}, err
		}
		if !ok {
			log.Printf("[payment][usecase] duplicate idempotency key order_id=%s key=%s", orderID, key)
			return entities.Payment{}, ErrDuplicatePayment
		}
		idemKey = key
	}

	description := fmt.Sprintf("Pagamento OS #%d - %s", order.Number, input.Kind.Label())
	sale, err := u.sales.CreateSale(ctx, order.ID, order.Number, description, input.Amount, input.Method)
	if err != nil {
		log.Printf("[payment][usecase] sale creation failed order_id=%s err=%v", orderID, err)
		u.releaseKey(ctx, idemKey)
		return entities.Payment{}, err
	}

	p := entities.Payment{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Amount:    input.Amount,
		Method:    input.Method,
		Kind:      input.Kind,
		Note:      strings.TrimSpace(input.Note),
		SaleID:    sale.ID,
		CreatedBy: actor.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.repo.Insert(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] persist failed order_id=%s sale_id=%s err=%v", orderID, sale.ID, err)
		if vErr := u.sales.VoidSale(ctx, sale.ID); vErr != nil {
			log.Printf("[payment][usecase] compensating void failed sale_id=%s err=%v", sale.ID, vErr)
		}
		u.releaseKey(ctx, idemKey)
		return entities.Payment{}, err
	}

	u.publish(ctx, entities.DomainEvent{
		Type:        entities.EventPaymentRegistered,
		OrderID:     order.ID,
		OrderNumber: order.Number,
		PaymentID:   created.ID,
		Amount:      created.Amount,
		Actor:       actor.ID,
		OccurredAt:  created.CreatedAt,
	})
	log.Printf("[payment][usecase] register success order_id=%s payment_id=%s sale_id=%s amount=%.2f", orderID, created.ID, sale.ID, created.Amount)
	return created, nil
}

func (u *PaymentUseCase) Cancel(ctx context.Context, paymentID string, actor entities.Actor) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if u.authz == nil || !u.authz.IsPrivileged(actor) {
		log.Printf("[payment][usecase] cancel denied payment_id=%s actor=%s role=%s", paymentID, actor.ID, actor.Role)
		return entities.Payment{}, ErrUnauthorized
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Cancelled() {
		return entities.Payment{}, ErrAlreadyCancelled
	}

	// Voiding an already-voided sale is a no-op in the register, so losing
	// the race below cannot double-reverse the cash total.
	if err := u.sales.VoidSale(ctx, p.SaleID); err != nil {
		log.Printf("[payment][usecase] sale void failed payment_id=%s sale_id=%s err=%v", paymentID, p.SaleID, err)
		return entities.Payment{}, err
	}

	now := time.Now().UTC()
	cancelled, err := u.repo.MarkCancelled(ctx, p.ID, p.OrderID, p.Amount, actor.ID, now)
	if err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
		// The sale is already reversed at this point. One immediate retry
		// before handing the half-cancelled state back to the caller.
		log.Printf("[payment][usecase] mark cancelled failed payment_id=%s sale_id=%s err=%v retrying", p.ID, p.SaleID, err)
		cancelled, err = u.repo.MarkCancelled(ctx, p.ID, p.OrderID, p.Amount, actor.ID, now)
	}
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Payment{}, ErrAlreadyCancelled
	}
	if err != nil {
		log.Printf("[payment][usecase] sale voided but payment still active payment_id=%s sale_id=%s order_id=%s err=%v", p.ID, p.SaleID, p.OrderID, err)
		return entities.Payment{}, err
	}

	order, oErr := u.orderRepo.GetByID(ctx, p.OrderID)
	if oErr != nil {
		log.Printf("[payment][usecase] order lookup for event failed order_id=%s err=%v", p.OrderID, oErr)
	}
	u.publish(ctx, entities.DomainEvent{
		Type:        entities.EventPaymentCancelled,
		OrderID:     p.OrderID,
		OrderNumber: order.Number,
		PaymentID:   p.ID,
		Amount:      p.Amount,
		Actor:       actor.ID,
		OccurredAt:  now,
	})
	log.Printf("[payment][usecase] cancel success payment_id=%s order_id=%s amount=%.2f", paymentID, p.OrderID, p.Amount)
	return cancelled, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// Balance recomputes the paid total from active payments instead of
// trusting the cached counter, and flags a drift when the two disagree.
func (u *PaymentUseCase) Balance(ctx context.Context, orderID string) (BalanceSummary, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return BalanceSummary{}, ErrOrderNotFound
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return BalanceSummary{}, err
	}
	if order.ID == "" {
		return BalanceSummary{}, ErrOrderNotFound
	}

	payments, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return BalanceSummary{}, err
	}

	paid := 0.0
	for _, p := range payments {
		if !p.Cancelled() {
			paid += p.Amount
		}
	}
	if math.Abs(paid-order.PaidTotal) > 0.009 {
		log.Printf("[payment][usecase] paid-total drift order_id=%s cached=%.2f recomputed=%.2f", orderID, order.PaidTotal, paid)
	}

	return BalanceSummary{
		OrderID:   order.ID,
		Total:     order.Total,
		PaidTotal: paid,
		Balance:   order.Total - paid,
	}, nil
}

// releaseKey frees a reserved idempotency key after a failed registration
// so the client can retry with the same key. Best effort: a failed
// release only costs the client a fresh key.
func (u *PaymentUseCase) releaseKey(ctx context.Context, key string) {
	if key == "" || u.idem == nil {
		return
	}
	if err := u.idem.Release(ctx, key); err != nil {
		log.Printf("[payment][usecase] idempotency release failed key=%s err=%v", key, err)
	}
}

func (u *PaymentUseCase) publish(ctx context.Context, event entities.DomainEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		log.Printf("[payment][usecase] event publish failed type=%s order_id=%s err=%v", event.Type, event.OrderID, err)
	}
}
