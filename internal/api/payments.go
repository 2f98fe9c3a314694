package api

import (
	"context"
	"net/http"
)

type PaymentClient struct{ c *Client }

func NewPaymentClient(c *Client) *PaymentClient { return &PaymentClient{c: c} }

// PayMock runs the demo payment for an order.
func (pc *PaymentClient) PayMock(ctx context.Context, orderID string) error {
	return pc.c.Call(ctx, http.MethodPost, "/payments/mock", map[string]string{
		"orderId": orderID,
	}, nil)
}
