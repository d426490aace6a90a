package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// External collaborators consumed by the usecases. Implementations live in
// internal/infrastructure; failures of the notifier, printer and publisher
// are best-effort by contract and must never roll back the state change
// that triggered them.

// INotifier delivers an already-rendered message to the customer.
type INotifier interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// IPrintService renders and prints the order sheet with the entry
// checklist snapshot.
type IPrintService interface {
	GenerateAndPrint(ctx context.Context, order entities.ServiceOrder, checklist entities.ChecklistResult, copies int) error
}

// IEventPublisher writes domain events to the event topic.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.DomainEvent) error
}

// IAuthorizationService gates privileged operations (payment cancellation).
type IAuthorizationService interface {
	IsPrivileged(actor entities.Actor) bool
}

// IIdempotencyStore reserves client-supplied idempotency keys. Reserve
// returns false when the key was already used. Release frees a reserved
// key again after a failed attempt so the client can retry with the same
// key.
type IIdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
