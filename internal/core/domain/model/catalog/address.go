package catalog

import (
	"strings"

	"logistics/internal/core/domain/model/kernel"
)

// Address is a customer-owned location. Orders reference addresses by ID only.
type Address struct {
	ID             kernel.ID
	CustomerID     kernel.ID
	Street         string
	ExteriorNumber string
	InteriorNumber string
	Neighborhood   string
	PostalCode     string
	City           string
	State          string
	Country        string
	IsActive       bool
}

// Label is the one-line form used by address selectors.
func (a Address) Label() string {
	parts := []string{a.Street, a.ExteriorNumber, a.Neighborhood, a.City, a.PostalCode}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
