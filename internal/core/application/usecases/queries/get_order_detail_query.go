package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery fetches the joined view of one order.
type GetOrderDetailQuery struct {
	token   string
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailQuery(token string, orderID kernel.ID) (GetOrderDetailQuery, error) {
	var tokenErr error
	if token == "" {
		tokenErr = errs.NewValueIsRequiredError("token")
	}
	if err := errors.Join(tokenErr, orderID.Validate()); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		token:   token,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) Token() string      { return q.token }
func (q GetOrderDetailQuery) OrderID() kernel.ID { return q.orderID }
