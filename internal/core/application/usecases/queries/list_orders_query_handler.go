package queries

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// MsgOrdersLoadFailed is reported when the order listing cannot be fetched.
const MsgOrdersLoadFailed = "Error cargando órdenes"

type ListOrdersQueryHandler struct {
	orders ports.OrderGateway
}

func NewListOrdersQueryHandler(orders ports.OrderGateway) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, query.Token(), query.All())
	if err != nil {
		return nil, errs.NewReferenceLoadError(err, MsgOrdersLoadFailed)
	}
	return orders, nil
}
