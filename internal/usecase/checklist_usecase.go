package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var ErrUnknownChecklistItem = errors.New("unknown checklist item")

// ChecklistInput carries the marked item ids and free-text notes of one
// completed checklist.
type ChecklistInput struct {
	MarkedItems []string
	Notes       string
}

// IChecklistUseCase records the entry inspection. The exit checklist is
// not completed on its own: it travels with the terminal transition (see
// IOrderUseCase.Finalize) so status and checklist land atomically.
//
// The entry checklist is not a transition guard; its first completion
// triggers the two-copy order print, best effort.

type IChecklistUseCase interface {
	CompleteEntry(ctx context.Context, orderID string, input ChecklistInput, actor entities.Actor) (entities.ServiceOrder, error)
}

type ChecklistUseCase struct {
	orderRepo interfaces.IOrderRepository
	printer   interfaces.IPrintService
	cfg       entities.ChecklistConfig
}

var _ IChecklistUseCase = (*ChecklistUseCase)(nil)

func NewChecklistUseCase(orderRepo interfaces.IOrderRepository, printer interfaces.IPrintService, cfg entities.ChecklistConfig) *ChecklistUseCase {
	return &ChecklistUseCase{orderRepo: orderRepo, printer: printer, cfg: cfg}
}

const entryPrintCopies = 2

func (u *ChecklistUseCase) CompleteEntry(ctx context.Context, orderID string, input ChecklistInput, actor entities.Actor) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if err := validateMarkedItems(u.cfg, entities.ChecklistPhaseEntry, input.MarkedItems); err != nil {
		return entities.ServiceOrder{}, err
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	first := order.EntryChecklist == nil
	result := entities.ChecklistResult{
		Phase:       entities.ChecklistPhaseEntry,
		MarkedItems: input.MarkedItems,
		Notes:       strings.TrimSpace(input.Notes),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		CompletedAt: time.Now().UTC(),
	}

	saved, err := u.orderRepo.SaveChecklist(ctx, orderID, result)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[checklist][usecase] entry completed order_id=%s items=%d first=%t", orderID, len(input.MarkedItems), first)

	if first && u.printer != nil {
		if err := u.printer.GenerateAndPrint(ctx, saved, result, entryPrintCopies); err != nil {
			log.Printf("[checklist][usecase] entry print failed order_id=%s err=%v", orderID, err)
		}
	}
	return saved, nil
}

func validateMarkedItems(cfg entities.ChecklistConfig, phase entities.ChecklistPhase, ids []string) error {
	for _, id := range ids {
		if !cfg.Knows(phase, id) {
			return ErrUnknownChecklistItem
		}
	}
	return nil
}
