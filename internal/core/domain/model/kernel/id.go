package kernel

import (
	"fmt"
	"strconv"

	"logistics/internal/pkg/errs"
)

// ID is a backend-assigned identifier (users, addresses, orders, package types).
// The zero value means "not set" and never validates; the form placeholder used by
// address selectors is that same zero.
type ID uint64

// NewID validates that raw identifies a persisted record.
func NewID(raw uint64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identifier as found in URLs and CLI arguments.
func ParseID(s string) (ID, error) {
	raw, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}
	return NewID(raw)
}

// Validate reports whether the identifier is set.
func (id ID) Validate() error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}

// IsSet is true for any non-placeholder identifier.
func (id ID) IsSet() bool {
	return id != 0
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
