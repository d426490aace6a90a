package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Lookups return a zero-value entity (empty ID) when nothing matches;
// usecases map that to their not-found errors.
//
// UpdateStatus and ApplyTerminalStatus are conditional on the current
// status so a concurrent transition surfaces as ErrConditionFailed instead
// of a lost update. ApplyTerminalStatus persists the exit checklist result
// and the terminal status as one atomic write.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	NextNumber(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.ServiceOrder, error)
	SaveChecklist(ctx context.Context, id string, result entities.ChecklistResult) (entities.ServiceOrder, error)
	ApplyTerminalStatus(ctx context.Context, id string, from, to entities.OrderStatus, result entities.ChecklistResult) (entities.ServiceOrder, error)
}
