package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrLoadCatalogsQueryIsNotConstructed = errors.New(
		"LoadCatalogsQuery must be created via NewLoadCatalogsQuery constructor",
	)
)

// LoadCatalogsQuery loads addresses, package types and status options for one
// workflow instance.
//
// Example:
//
//	// admin inspecting customer 42's order
//	query, _ := NewLoadCatalogsQuery(token, adminID, &customerID)
//	catalogs, err := handler.Handle(ctx, query)
type LoadCatalogsQuery struct {
	token       string
	callerID    kernel.ID
	forCustomer *kernel.ID

	guard guard.ConstructorGuard
}

// NewLoadCatalogsQuery builds a query for callerID. forCustomer may be nil.
func NewLoadCatalogsQuery(token string, callerID kernel.ID, forCustomer *kernel.ID) (LoadCatalogsQuery, error) {
	if token == "" {
		return LoadCatalogsQuery{}, errs.NewValueIsRequiredError("token")
	}
	if err := callerID.Validate(); err != nil {
		return LoadCatalogsQuery{}, errs.NewValueIsRequiredErrorWithCause("caller_id", err)
	}

	q := LoadCatalogsQuery{
		token:    token,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}
	if forCustomer != nil && forCustomer.IsSet() {
		id := *forCustomer
		q.forCustomer = &id
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q LoadCatalogsQuery) Validate() error {
	return q.guard.Validate(ErrLoadCatalogsQueryIsNotConstructed)
}

func (q LoadCatalogsQuery) Token() string {
	return q.token
}

func (q LoadCatalogsQuery) CallerID() kernel.ID {
	return q.callerID
}

// AddressScope is the customer whose addresses to list, or nil for the caller's own.
// A target equal to the caller is the same as no target.
func (q LoadCatalogsQuery) AddressScope() *kernel.ID {
	if q.forCustomer == nil || *q.forCustomer == q.callerID {
		return nil
	}
	id := *q.forCustomer
	return &id
}
