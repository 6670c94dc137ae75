package commands

import (
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderIsNotDraft = errors.New("order has already been persisted")
)

// CreateOrderCommand submits a draft order on behalf of the session holding token.
//
// Example:
//
//	draft, _ := order.NewOrder(order.Draft{CustomerID: 1, ...})
//	cmd, err := NewCreateOrderCommand(token, draft)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	token string
	draft *order.Order

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that token is present and draft is an unsaved order.
func NewCreateOrderCommand(token string, draft *order.Order) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setDraft(draft),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Token() string {
	return c.token
}

func (c CreateOrderCommand) Draft() *order.Order {
	return c.draft
}

func (c *CreateOrderCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	c.token = token
	return nil
}

func (c *CreateOrderCommand) setDraft(draft *order.Order) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if !draft.IsDraft() {
		return ErrOrderIsNotDraft
	}
	c.draft = draft
	return nil
}
