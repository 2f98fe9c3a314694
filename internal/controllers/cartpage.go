package controllers

import (
	"context"

	"github.com/MahirAsef999/E-Buy/internal/cart"
	"github.com/MahirAsef999/E-Buy/internal/catalog"
	"go.uber.org/zap"
)

// CartController backs the cart modal and the header badge.
type CartController struct {
	carts *cart.Service
	log   *zap.Logger
}

func NewCartController(carts *cart.Service, log *zap.Logger) *CartController {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartController{carts: carts, log: log}
}

// BadgeCount returns the number of distinct cart lines for the header
// badge. Failures are logged and shown as zero; the badge never blocks a
// page.
func (cc *CartController) BadgeCount(ctx context.Context) int {
	c, err := cc.carts.Load(ctx)
	if err != nil {
		cc.log.Warn("badge update failed", zap.Error(err))
		return 0
	}
	return c.ItemCount()
}

type CartRow struct {
	ProductID string
	ImageURL  string
	Price     float64
	Qty       int
}

type CartView struct {
	Rows    []CartRow
	Totals  cart.Totals
	Empty   bool
	Message Message
}

func (cc *CartController) View(ctx context.Context) CartView {
	c, err := cc.carts.Load(ctx)
	if err != nil {
		return CartView{Message: errorMsg("Error loading cart.")}
	}
	return cc.render(c)
}

// ChangeQuantity mutates one line then re-renders from the reloaded cart.
// Dropping to zero or below asks confirm before removing the line.
func (cc *CartController) ChangeQuantity(ctx context.Context, productID string, newQty int, confirm func() bool) CartView {
	c, err := cc.carts.ChangeQuantity(ctx, productID, newQty, confirm)
	if err != nil {
		return CartView{Message: errorMsg("Failed to update quantity")}
	}
	return cc.render(c)
}

func (cc *CartController) Remove(ctx context.Context, productID string) CartView {
	c, err := cc.carts.Remove(ctx, productID)
	if err != nil {
		return CartView{Message: errorMsg("Failed to remove item")}
	}
	return cc.render(c)
}

func (cc *CartController) render(c cart.Cart) CartView {
	if len(c.Items) == 0 {
		return CartView{Empty: true, Message: Message{Kind: KindMuted, Text: "Your cart is empty."}}
	}
	rows := make([]CartRow, 0, len(c.Items))
	for _, it := range c.Items {
		rows = append(rows, CartRow{
			ProductID: it.ProductID,
			ImageURL:  catalog.ImageURL(it.ProductID),
			Price:     it.Price,
			Qty:       it.Qty,
		})
	}
	return CartView{Rows: rows, Totals: cart.ComputeTotals(c.Items)}
}
