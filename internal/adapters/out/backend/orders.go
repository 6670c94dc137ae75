package backend

import (
	"context"
	"net/http"
	"net/url"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// GetDetail fetches /api/orders/{id}.
func (c *Client) GetDetail(ctx context.Context, token string, id kernel.ID) (order.Detail, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/orders/"+id.String(), nil, token, nil)
	if err != nil {
		return order.Detail{}, err
	}

	var dto orderDetailDTO
	if err = c.do("get_order_detail", req, &dto); err != nil {
		return order.Detail{}, err
	}
	return dto.toDomain(), nil
}

// List fetches /api/orders, adding all=1 when every order is requested.
func (c *Client) List(ctx context.Context, token string, all bool) ([]*order.Order, error) {
	var query url.Values
	if all {
		query = url.Values{"all": []string{"1"}}
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/orders", query, token, nil)
	if err != nil {
		return nil, err
	}

	var dtos []orderDTO
	if err = c.do("list_orders", req, &dtos); err != nil {
		return nil, err
	}

	out := make([]*order.Order, 0, len(dtos))
	for _, d := range dtos {
		o, convErr := d.toDomain()
		if convErr != nil {
			c.logger.Warn("skipping malformed order", "error", convErr)
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// Create posts a draft to /api/orders. An empty success body yields the draft itself.
func (c *Client) Create(ctx context.Context, token string, draft *order.Order) (*order.Order, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/orders", nil, token, orderToDTO(draft))
	if err != nil {
		return nil, err
	}

	var dto orderDTO
	if err = c.do("create_order", req, &dto); err != nil {
		return nil, err
	}
	if dto.ID == 0 {
		return draft, nil
	}
	return dto.toDomain()
}

// PatchStatus sends {status, internal_notes} to /api/orders/{id}/status.
func (c *Client) PatchStatus(
	ctx context.Context,
	token string,
	id kernel.ID,
	status order.Status,
	internalNotes string,
) error {
	req, err := c.newRequest(ctx, http.MethodPatch, "/api/orders/"+id.String()+"/status", nil, token, patchStatusDTO{
		Status:        status.String(),
		InternalNotes: internalNotes,
	})
	if err != nil {
		return err
	}
	return c.do("patch_order_status", req, nil)
}
