package session

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is the portal role carried in the access token.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// ParseRole converts the token claim into a Role.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate accepts client and admin only.
func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a portal role", string(r)))
	}
}

// IsAdmin reports whether the role may mutate order status and internal notes.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
