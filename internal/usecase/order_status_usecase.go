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
	ErrOrderNotFound         = errors.New("service order not found")
	ErrInvalidOrder          = errors.New("invalid order data")
	ErrUnknownStatus         = errors.New("unknown status label")
	ErrOrderClosed           = errors.New("order is in a terminal status")
	ErrNotTerminalStatus     = errors.New("status is not terminal")
	ErrStatusConflict        = errors.New("order status changed concurrently")
	ErrExitChecklistRequired = errors.New("terminal status requires the exit checklist")
	ErrChecklistIncomplete   = errors.New("exit checklist not decided")
)

// OrderInput is the create-order command.
type OrderInput struct {
	CustomerID     string
	CustomerName   string
	CustomerPhone  string
	DeviceBrand    string
	DeviceModel    string
	DeviceSerial   string
	Problem        string
	BudgetAmount   float64
	BudgetApproved float64
}

// ExitChecklistInput is the exit inspection submitted together with the
// terminal transition. Approved nil means the technician has not decided.
type ExitChecklistInput struct {
	MarkedItems []string
	Notes       string
	Approved    *bool
}

// IOrderUseCase is the order status state machine.
//
// ChangeStatus applies non-terminal transitions immediately; a terminal
// target is deferred with ErrExitChecklistRequired so the caller collects
// the exit checklist and retries through Finalize, which persists checklist
// and status as one conditional write. Notifications and domain events are
// best effort after the commit and never fail the transition.

type IOrderUseCase interface {
	Create(ctx context.Context, input OrderInput, actor entities.Actor) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ChangeStatus(ctx context.Context, orderID string, target entities.OrderStatus, actor entities.Actor) (entities.ServiceOrder, error)
	Finalize(ctx context.Context, orderID string, target entities.OrderStatus, checklist ExitChecklistInput, actor entities.Actor) (entities.ServiceOrder, error)
}

type OrderUseCase struct {
	repo         interfaces.IOrderRepository
	notifier     interfaces.INotifier
	publisher    interfaces.IEventPublisher
	statusCfg    entities.StatusConfig
	checklistCfg entities.ChecklistConfig
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, notifier interfaces.INotifier, publisher interfaces.IEventPublisher, statusCfg entities.StatusConfig, checklistCfg entities.ChecklistConfig) *OrderUseCase {
	return &OrderUseCase{
		repo:         repo,
		notifier:     notifier,
		publisher:    publisher,
		statusCfg:    statusCfg,
		checklistCfg: checklistCfg,
	}
}

func (u *OrderUseCase) Create(ctx context.Context, input OrderInput, actor entities.Actor) (entities.ServiceOrder, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return entities.ServiceOrder{}, ErrInvalidOrder
	}

	number, err := u.repo.NextNumber(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:             uuid.NewString(),
		Number:         number,
		Status:         entities.OrderStatusAberta,
		CustomerID:     strings.TrimSpace(input.CustomerID),
		CustomerName:   strings.TrimSpace(input.CustomerName),
		CustomerPhone:  strings.TrimSpace(input.CustomerPhone),
		DeviceBrand:    strings.TrimSpace(input.DeviceBrand),
		DeviceModel:    strings.TrimSpace(input.DeviceModel),
		DeviceSerial:   strings.TrimSpace(input.DeviceSerial),
		Problem:        strings.TrimSpace(input.Problem),
		BudgetAmount:   input.BudgetAmount,
		BudgetApproved: input.BudgetApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	u.publish(ctx, entities.DomainEvent{
		Type:        entities.EventOrderCreated,
		OrderID:     created.ID,
		OrderNumber: created.Number,
		Status:      created.Status,
		Actor:       actor.ID,
		OccurredAt:  now,
	})
	log.Printf("[order][usecase] create success order_id=%s number=%d", created.ID, created.Number)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ChangeStatus(ctx context.Context, orderID string, target entities.OrderStatus, actor entities.Actor) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if !u.statusCfg.Knows(target) {
		return entities.ServiceOrder{}, ErrUnknownStatus
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if u.statusCfg.IsTerminal(order.Status) {
		return entities.ServiceOrder{}, ErrOrderClosed
	}
	if u.statusCfg.IsTerminal(target) {
		// Deferred: the transition only happens through Finalize, with the
		// decided exit checklist.
		log.Printf("[order][usecase] terminal transition deferred order_id=%s target=%s", orderID, target)
		return entities.ServiceOrder{}, ErrExitChecklistRequired
	}
	if order.Status == target {
		return order, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, orderID, order.Status, target)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.ServiceOrder{}, ErrStatusConflict
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] status changed order_id=%s from=%s to=%s", orderID, order.Status, target)

	u.notifyStatus(ctx, updated, target)
	u.publish(ctx, entities.DomainEvent{
		Type:        entities.EventOrderStatusChanged,
		OrderID:     updated.ID,
		OrderNumber: updated.Number,
		Status:      target,
		Actor:       actor.ID,
		OccurredAt:  time.Now().UTC(),
	})
	return updated, nil
}

func (u *OrderUseCase) Finalize(ctx context.Context, orderID string, target entities.OrderStatus, checklist ExitChecklistInput, actor entities.Actor) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if !u.statusCfg.Knows(target) {
		return entities.ServiceOrder{}, ErrUnknownStatus
	}
	if !u.statusCfg.IsTerminal(target) {
		return entities.ServiceOrder{}, ErrNotTerminalStatus
	}
	if checklist.Approved == nil {
		return entities.ServiceOrder{}, ErrChecklistIncomplete
	}
	if err := validateMarkedItems(u.checklistCfg, entities.ChecklistPhaseExit, checklist.MarkedItems); err != nil {
		return entities.ServiceOrder{}, err
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if u.statusCfg.IsTerminal(order.Status) {
		return entities.ServiceOrder{}, ErrOrderClosed
	}

	now := time.Now().UTC()
	result := entities.ChecklistResult{
		Phase:       entities.ChecklistPhaseExit,
		MarkedItems: checklist.MarkedItems,
		Notes:       strings.TrimSpace(checklist.Notes),
		Approved:    checklist.Approved,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		CompletedAt: now,
	}

	updated, err := u.repo.ApplyTerminalStatus(ctx, orderID, order.Status, target, result)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.ServiceOrder{}, ErrStatusConflict
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] finalized order_id=%s status=%s approved=%t", orderID, target, *checklist.Approved)

	u.notifyStatus(ctx, updated, target)
	u.publish(ctx, entities.DomainEvent{
		Type:        entities.EventOrderFinalized,
		OrderID:     updated.ID,
		OrderNumber: updated.Number,
		Status:      target,
		Actor:       actor.ID,
		OccurredAt:  now,
	})
	return updated, nil
}

// notifyStatus delivers the configured template for the new status, best
// effort: failures are logged and never surfaced to the caller.
func (u *OrderUseCase) notifyStatus(ctx context.Context, order entities.ServiceOrder, status entities.OrderStatus) {
	if u.notifier == nil {
		return
	}
	tpl, ok := u.statusCfg.Notifications[status]
	if !ok || !tpl.Enabled || order.CustomerPhone == "" {
		return
	}
	msg := tpl.Render(order, status, u.statusCfg.OrderLink(order))
	if err := u.notifier.Send(ctx, order.CustomerPhone, msg); err != nil {
		log.Printf("[order][usecase] notification failed order_id=%s status=%s err=%v", order.ID, status, err)
	}
}

func (u *OrderUseCase) publish(ctx context.Context, event entities.DomainEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		log.Printf("[order][usecase] event publish failed type=%s order_id=%s err=%v", event.Type, event.OrderID, err)
	}
}
