package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/metrics"
	"logistics/internal/pkg/errs"
)

// MsgCreateFailed is reported when the backend rejects an order without a reason.
const MsgCreateFailed = "No se pudo crear la orden"

// CreateOrderCommandHandler sends draft orders to the backend. It issues exactly one
// create request per call and never retries.
type CreateOrderCommandHandler struct {
	orders ports.OrderGateway
}

func NewCreateOrderCommandHandler(orders ports.OrderGateway) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders}
}

// Handle returns the order as persisted by the backend.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := h.orders.Create(ctx, cmd.Token(), cmd.Draft())
	if err != nil {
		metrics.OrdersSubmittedTotal.WithLabelValues("create", metrics.OutcomeFailure).Inc()
		return nil, errs.NewSubmissionError(err, MsgCreateFailed)
	}

	metrics.OrdersSubmittedTotal.WithLabelValues("create", metrics.OutcomeSuccess).Inc()
	return created, nil
}
