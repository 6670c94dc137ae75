package order

import (
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is an order status label. The backend owns the set of legal labels and the
// legality of transitions between them; the portal only checks that a label is
// present and, when a catalog is loaded, that it is one of the offered options.
type Status string

// Labels the backend is known to offer. Created is the only one the portal assigns.
const (
	Created   Status = "created"
	Collected Status = "collected"
	InStation Status = "in_station"
	InRoute   Status = "in_route"
	Delivered Status = "delivered"
	Cancelled Status = "cancelled"
)

// ParseStatus trims raw and rejects an empty label.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate rejects an empty label.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
