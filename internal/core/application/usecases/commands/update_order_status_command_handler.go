package commands

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/metrics"
	"logistics/internal/pkg/errs"
)

// MsgStatusUpdateFailed is reported when the backend rejects a status change without a reason.
const MsgStatusUpdateFailed = "No se pudo actualizar el estatus"

// UpdateOrderStatusCommandHandler issues exactly one status patch per call.
type UpdateOrderStatusCommandHandler struct {
	orders ports.OrderGateway
}

func NewUpdateOrderStatusCommandHandler(orders ports.OrderGateway) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{orders: orders}
}

// Handle rejects non-admin commands without issuing a request.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Role().IsAdmin() {
		return errs.ErrForbidden
	}

	err := h.orders.PatchStatus(ctx, cmd.Token(), cmd.OrderID(), cmd.Status(), cmd.InternalNotes())
	if err != nil {
		metrics.OrdersSubmittedTotal.WithLabelValues("status", metrics.OutcomeFailure).Inc()
		return errs.NewSubmissionError(err, MsgStatusUpdateFailed)
	}

	metrics.OrdersSubmittedTotal.WithLabelValues("status", metrics.OutcomeSuccess).Inc()
	return nil
}
