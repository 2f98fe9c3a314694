package controllers

import (
	"context"

	"github.com/MahirAsef999/E-Buy/internal/catalog"
	"go.uber.org/zap"
)

type CartMutator interface {
	AddItem(ctx context.Context, productID string, qty int) error
}

// StorefrontController backs the main page product carousel: the product
// cards and the add-to-cart action behind them.
type StorefrontController struct {
	carts CartMutator
	log   *zap.Logger
}

func NewStorefrontController(carts CartMutator, log *zap.Logger) *StorefrontController {
	if log == nil {
		log = zap.NewNop()
	}
	return &StorefrontController{carts: carts, log: log}
}

type ProductCard struct {
	ID       string
	Price    float64
	ImageURL string
}

func (sc *StorefrontController) Products() []ProductCard {
	products := catalog.List()
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			ID:       p.ID,
			Price:    p.Price,
			ImageURL: catalog.ImageURL(p.ID),
		})
	}
	return cards
}

type AddToCartResult struct {
	Message Message
}

func (sc *StorefrontController) AddToCart(ctx context.Context, productID string, qty int) AddToCartResult {
	if qty < 1 {
		qty = 1
	}
	if _, ok := catalog.Price(productID); !ok {
		return AddToCartResult{Message: errorMsg("Unknown product.")}
	}
	if err := sc.carts.AddItem(ctx, productID, qty); err != nil {
		return AddToCartResult{Message: failureMessage(err, "Failed to add to cart.")}
	}
	sc.log.Info("added to cart", zap.String("product_id", productID), zap.Int("qty", qty))
	return AddToCartResult{Message: successMsg("Added to cart.")}
}

// DashboardSection is one tile on the account dashboard.
type DashboardSection struct {
	ID    string
	Title string
	Page  string
}

// DashboardSections lists the account tiles and where each one leads.
func DashboardSections() []DashboardSection {
	return []DashboardSection{
		{ID: "login-security", Title: "Login & Security", Page: "login-edit"},
		{ID: "order-history", Title: "Order History", Page: PageOrderHistory},
		{ID: "address", Title: "Addresses", Page: "address-edit"},
		{ID: "payment", Title: "Payment Options", Page: "payment-methods"},
	}
}
