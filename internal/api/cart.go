package api

import (
	"context"
	"net/http"

	"github.com/MahirAsef999/E-Buy/internal/cart"
)

type CartClient struct{ c *Client }

func NewCartClient(c *Client) *CartClient { return &CartClient{c: c} }

func (cc *CartClient) Get(ctx context.Context) (cart.Cart, error) {
	var out cart.Cart
	err := cc.c.Call(ctx, http.MethodGet, "/cart", nil, &out)
	return out, err
}

func (cc *CartClient) AddItem(ctx context.Context, productID string, qty int) error {
	return cc.c.Call(ctx, http.MethodPost, "/cart/items", map[string]any{
		"productId": productID,
		"qty":       qty,
	}, nil)
}

func (cc *CartClient) UpdateItemQuantity(ctx context.Context, productID string, qty int) error {
	return cc.c.Call(ctx, http.MethodPatch, "/cart/items/"+productID, map[string]int{
		"qty": qty,
	}, nil)
}

func (cc *CartClient) RemoveItem(ctx context.Context, productID string) error {
	return cc.c.Call(ctx, http.MethodDelete, "/cart/items/"+productID, nil, nil)
}
