package order

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// AddressSummary is the address fragment joined into an order detail.
type AddressSummary struct {
	ID           kernel.ID
	Street       string
	Exterior     string
	Neighborhood string
	City         string
	Postal       string
}

// Detail is the joined view of one order, including who owns it.
type Detail struct {
	ID             kernel.ID
	OrderNumber    string
	CreatedAt      time.Time
	OwnerID        kernel.ID
	OwnerName      string
	Origin         AddressSummary
	Destination    AddressSummary
	Quantity       int
	ActualWeightKg float64
	PackageTypeID  kernel.ID
	SizeCode       string
	Observations   string
	InternalNotes  string
	UpdatedAt      time.Time
	Status         Status
}

// IsOwnedBy reports whether userID owns the order.
func (d Detail) IsOwnedBy(userID kernel.ID) bool {
	return d.OwnerID == userID
}
