package ports

import (
	"context"

	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/domain/model/kernel"
)

// CatalogGateway fetches the reference data an order form needs. The three calls are
// independent of each other.
type CatalogGateway interface {
	// ListAddresses returns the caller's addresses, or those of customerID when it is
	// non-nil. Scoping to another customer is an admin capability the backend enforces.
	ListAddresses(ctx context.Context, token string, customerID *kernel.ID) ([]catalog.Address, error)

	// ListPackageTypes returns every bracket the backend exposes, active or not.
	ListPackageTypes(ctx context.Context, token string) ([]catalog.PackageType, error)

	// ListStatusOptions returns the status labels the backend accepts.
	ListStatusOptions(ctx context.Context, token string) ([]catalog.StatusOption, error)
}
