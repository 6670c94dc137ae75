package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand asks the backend to move an order to another status.
// Only admins may issue it; which transitions are legal is up to the backend.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	token         string
	role          session.Role
	orderID       kernel.ID
	status        order.Status
	internalNotes string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the request. A non-admin role is rejected
// with errs.ErrForbidden before anything else is checked.
func NewUpdateOrderStatusCommand(
	token string,
	role session.Role,
	orderID kernel.ID,
	status order.Status,
	internalNotes string,
) (UpdateOrderStatusCommand, error) {
	if !role.IsAdmin() {
		return UpdateOrderStatusCommand{}, errs.ErrForbidden
	}

	cmd := UpdateOrderStatusCommand{
		role:          role,
		internalNotes: internalNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Token() string         { return c.token }
func (c UpdateOrderStatusCommand) Role() session.Role    { return c.role }
func (c UpdateOrderStatusCommand) OrderID() kernel.ID    { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status  { return c.status }
func (c UpdateOrderStatusCommand) InternalNotes() string { return c.internalNotes }

func (c *UpdateOrderStatusCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	c.token = token
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
