package queries

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// MsgOrderLoadFailed is reported when an order detail cannot be fetched.
const MsgOrderLoadFailed = "Error obteniendo orden"

type GetOrderDetailQueryHandler struct {
	orders ports.OrderGateway
}

func NewGetOrderDetailQueryHandler(orders ports.OrderGateway) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{orders: orders}
}

func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (order.Detail, error) {
	if err := query.Validate(); err != nil {
		return order.Detail{}, err
	}

	detail, err := h.orders.GetDetail(ctx, query.Token(), query.OrderID())
	if err != nil {
		return order.Detail{}, errs.NewReferenceLoadError(err, MsgOrderLoadFailed)
	}
	return detail, nil
}
