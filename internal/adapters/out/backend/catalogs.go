package backend

import (
	"context"
	"net/http"
	"net/url"

	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/domain/model/kernel"
)

// ListAddresses fetches /api/addresses, scoped to customerID when it is set.
func (c *Client) ListAddresses(ctx context.Context, token string, customerID *kernel.ID) ([]catalog.Address, error) {
	var query url.Values
	if customerID != nil && customerID.IsSet() {
		query = url.Values{"customer_id": []string{customerID.String()}}
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/addresses", query, token, nil)
	if err != nil {
		return nil, err
	}

	var dtos []addressDTO
	if err = c.do("list_addresses", req, &dtos); err != nil {
		return nil, err
	}

	out := make([]catalog.Address, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// ListPackageTypes fetches /api/package-types.
func (c *Client) ListPackageTypes(ctx context.Context, token string) ([]catalog.PackageType, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/package-types", nil, token, nil)
	if err != nil {
		return nil, err
	}

	var dtos []packageTypeDTO
	if err = c.do("list_package_types", req, &dtos); err != nil {
		return nil, err
	}

	out := make([]catalog.PackageType, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// ListStatusOptions fetches /api/orders/status.
func (c *Client) ListStatusOptions(ctx context.Context, token string) ([]catalog.StatusOption, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/orders/status", nil, token, nil)
	if err != nil {
		return nil, err
	}

	var dtos []statusOptionDTO
	if err = c.do("list_status_options", req, &dtos); err != nil {
		return nil, err
	}

	out := make([]catalog.StatusOption, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, catalog.StatusOption{Label: d.Label, Value: d.Value})
	}
	return out, nil
}
