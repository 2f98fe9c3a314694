package api

import (
	"context"
	"net/http"
)

type AccountClient struct{ c *Client }

func NewAccountClient(c *Client) *AccountClient { return &AccountClient{c: c} }

type Account struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	ShippingPhone string `json:"shipping_phone"`
}

func (ac *AccountClient) Get(ctx context.Context) (Account, error) {
	var out Account
	err := ac.c.Call(ctx, http.MethodGet, "/account/me", nil, &out)
	return out, err
}

// Update sends a partial update; the account editor saves one field at a
// time, so the payload is a field->value map.
func (ac *AccountClient) Update(ctx context.Context, fields map[string]string) error {
	return ac.c.Call(ctx, http.MethodPut, "/account/me", fields, nil)
}
