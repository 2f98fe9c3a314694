package api

import (
	"context"
	"net/http"

	"github.com/MahirAsef999/E-Buy/internal/cart"
)

type OrderClient struct{ c *Client }

func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

func (oc *OrderClient) List(ctx context.Context) ([]cart.Order, error) {
	var out []cart.Order
	err := oc.c.Call(ctx, http.MethodGet, "/orders", nil, &out)
	return out, err
}

// Create places an order from the current cart; the backend snapshots and
// clears the cart itself.
func (oc *OrderClient) Create(ctx context.Context) (cart.Order, error) {
	var out cart.Order
	err := oc.c.Call(ctx, http.MethodPost, "/orders", nil, &out)
	return out, err
}
