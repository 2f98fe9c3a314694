package controllers

import (
	"context"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/MahirAsef999/E-Buy/internal/cart"
	"github.com/MahirAsef999/E-Buy/internal/session"
	"github.com/MahirAsef999/E-Buy/internal/validate"
	"go.uber.org/zap"
)

type CartAPI interface {
	Get(ctx context.Context) (cart.Cart, error)
}

type OrderAPI interface {
	List(ctx context.Context) ([]cart.Order, error)
	Create(ctx context.Context) (cart.Order, error)
}

type PaymentAPI interface {
	PayMock(ctx context.Context, orderID string) error
}

type DefaultCardAPI interface {
	Default(ctx context.Context) (api.PaymentMethod, error)
}

type ClaimsSource interface {
	CurrentClaims() (session.Claims, bool)
}

// CheckoutController backs the checkout page: shipping/card prefill, the
// order summary, and placing the order with its mock payment.
type CheckoutController struct {
	carts    CartAPI
	orders   OrderAPI
	payments PaymentAPI
	cards    DefaultCardAPI
	claims   ClaimsSource
	log      *zap.Logger
}

func NewCheckoutController(carts CartAPI, orders OrderAPI, payments PaymentAPI, cards DefaultCardAPI, claims ClaimsSource, log *zap.Logger) *CheckoutController {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutController{carts: carts, orders: orders, payments: payments, cards: cards, claims: claims, log: log}
}

// ShippingForm mirrors the checkout inputs.
type ShippingForm struct {
	FirstName  string
	LastName   string
	Email      string
	Address    string
	Phone      string
	CardNumber string
	Expiry     string
	CVV        string
}

// Prefill fills empty shipping fields from the token claims and empty card
// fields from the default saved card (number masked). Values the user has
// already typed are never overwritten, and a missing default card or
// session is not an error.
func (cc *CheckoutController) Prefill(ctx context.Context, form ShippingForm) ShippingForm {
	if claims, ok := cc.claims.CurrentClaims(); ok {
		if form.FirstName == "" {
			form.FirstName = claims.FirstName
		}
		if form.LastName == "" {
			form.LastName = claims.LastName
		}
		if form.Email == "" {
			form.Email = claims.Email
		}
		if form.Address == "" && claims.Address != "" {
			form.Address = claims.Address
		}
	}

	method, err := cc.cards.Default(ctx)
	if err != nil {
		// 404 when no default card, 401 when signed out; either way the
		// form just stays blank.
		cc.log.Debug("no default payment method", zap.Error(err))
		return form
	}
	if form.CardNumber == "" {
		form.CardNumber = "**** **** **** " + method.LastFourDigits
	}
	if form.Expiry == "" {
		form.Expiry = method.ExpiryDate
	}
	return form
}

type CheckoutLine struct {
	ProductID string
	Qty       int
	LineTotal float64
}

type CheckoutSummary struct {
	Lines   []CheckoutLine
	Totals  cart.Totals
	Empty   bool
	Message Message
}

func (cc *CheckoutController) Summary(ctx context.Context) CheckoutSummary {
	c, err := cc.carts.Get(ctx)
	if err != nil {
		return CheckoutSummary{Message: errorMsg("Failed to load order.")}
	}
	if len(c.Items) == 0 {
		return CheckoutSummary{Empty: true, Message: Message{Kind: KindMuted, Text: "Your cart is empty."}}
	}

	lines := make([]CheckoutLine, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, CheckoutLine{
			ProductID: it.ProductID,
			Qty:       it.Qty,
			LineTotal: it.LineTotal(),
		})
	}
	return CheckoutSummary{Lines: lines, Totals: cart.ComputeTotals(c.Items)}
}

type PlaceOrderResult struct {
	FieldErrors validate.FieldErrors
	OrderID     string
	Total       float64
	Message     Message
	Redirect    string
}

// PlaceOrder checks that every field is filled, creates the order, then
// runs the mock payment for it.
func (cc *CheckoutController) PlaceOrder(ctx context.Context, form ShippingForm) PlaceOrderResult {
	cf := validate.CheckoutForm{
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Address:    form.Address,
		Phone:      form.Phone,
		Email:      form.Email,
		CardNumber: form.CardNumber,
		Expiry:     form.Expiry,
		CVV:        form.CVV,
	}
	if fe := cf.Validate(); !fe.Ok() {
		return PlaceOrderResult{
			FieldErrors: fe,
			Message:     errorMsg("Please fill out all fields."),
		}
	}

	order, err := cc.orders.Create(ctx)
	if err != nil {
		return PlaceOrderResult{Message: failureMessage(err, "Failed to place order.")}
	}

	if err := cc.payments.PayMock(ctx, order.ID); err != nil {
		return PlaceOrderResult{Message: failureMessage(err, "Failed to place order.")}
	}

	cc.log.Info("order placed", zap.String("order_id", order.ID))
	return PlaceOrderResult{
		OrderID:  order.ID,
		Total:    order.EffectiveTotal(),
		Message:  successMsg("Order placed successfully!"),
		Redirect: PageMain,
	}
}
