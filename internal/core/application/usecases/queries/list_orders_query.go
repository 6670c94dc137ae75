package queries

import (
	"errors"

	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists the caller's orders. Admins may ask for every order; for
// anyone else the request is narrowed to their own.
type ListOrdersQuery struct {
	token string
	all   bool

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(token string, role session.Role, all bool) (ListOrdersQuery, error) {
	if token == "" {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("token")
	}

	return ListOrdersQuery{
		token: token,
		all:   all && role.IsAdmin(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Token() string { return q.token }
func (q ListOrdersQuery) All() bool     { return q.all }
