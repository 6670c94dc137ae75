package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderGateway reads and mutates orders on the backend, which owns them.
type OrderGateway interface {
	// GetDetail returns the joined view of one order.
	GetDetail(ctx context.Context, token string, id kernel.ID) (order.Detail, error)

	// List returns the caller's orders, or every order when all is set and the caller
	// is an admin.
	List(ctx context.Context, token string, all bool) ([]*order.Order, error)

	// Create submits a draft and returns the persisted order.
	Create(ctx context.Context, token string, draft *order.Order) (*order.Order, error)

	// PatchStatus requests a status change. Transition legality is decided by the backend.
	PatchStatus(ctx context.Context, token string, id kernel.ID, status order.Status, internalNotes string) error
}
