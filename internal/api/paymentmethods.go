package api

import (
	"context"
	"net/http"
	"strconv"
)

type PaymentMethodClient struct{ c *Client }

func NewPaymentMethodClient(c *Client) *PaymentMethodClient {
	return &PaymentMethodClient{c: c}
}

// PaymentMethod is a stored card. Get returns CardNumber masked; List omits
// it entirely and only carries the last four digits.
type PaymentMethod struct {
	ID             int    `json:"id"`
	CardType       string `json:"cardType"`
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber,omitempty"`
	LastFourDigits string `json:"lastFourDigits"`
	ExpiryDate     string `json:"expiryDate"`
	BillingZip     string `json:"billingZip,omitempty"`
	IsDefault      bool   `json:"isDefault"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// PaymentMethodInput is the create/update payload. On update a masked
// CardNumber means "keep the stored number".
type PaymentMethodInput struct {
	CardType       string `json:"cardType"`
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	BillingZip     string `json:"billingZip"`
	IsDefault      bool   `json:"isDefault"`
}

func (pc *PaymentMethodClient) List(ctx context.Context) ([]PaymentMethod, error) {
	var out []PaymentMethod
	err := pc.c.Call(ctx, http.MethodGet, "/payment-methods", nil, &out)
	return out, err
}

func (pc *PaymentMethodClient) Get(ctx context.Context, id int) (PaymentMethod, error) {
	var out PaymentMethod
	err := pc.c.Call(ctx, http.MethodGet, "/payment-methods/"+strconv.Itoa(id), nil, &out)
	return out, err
}

func (pc *PaymentMethodClient) Create(ctx context.Context, in PaymentMethodInput) error {
	return pc.c.Call(ctx, http.MethodPost, "/payment-methods", in, nil)
}

func (pc *PaymentMethodClient) Update(ctx context.Context, id int, in PaymentMethodInput) error {
	return pc.c.Call(ctx, http.MethodPut, "/payment-methods/"+strconv.Itoa(id), in, nil)
}

func (pc *PaymentMethodClient) Delete(ctx context.Context, id int) error {
	return pc.c.Call(ctx, http.MethodDelete, "/payment-methods/"+strconv.Itoa(id), nil, nil)
}

// Default returns the card flagged for automatic selection at checkout.
// A 404 means none is set; callers treat that as non-fatal.
func (pc *PaymentMethodClient) Default(ctx context.Context) (PaymentMethod, error) {
	var out PaymentMethod
	err := pc.c.Call(ctx, http.MethodGet, "/payment-methods/default", nil, &out)
	return out, err
}
