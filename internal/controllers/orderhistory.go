package controllers

import (
	"context"
	"time"

	"github.com/MahirAsef999/E-Buy/internal/cart"
	"go.uber.org/zap"
)

// OrderHistoryController backs the past-orders page: load once, keep the
// sorted list, re-filter locally as the user switches ranges.
type OrderHistoryController struct {
	orders  OrderAPI
	session SessionReader
	log     *zap.Logger

	now func() time.Time
}

func NewOrderHistoryController(orders OrderAPI, sess SessionReader, log *zap.Logger) *OrderHistoryController {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderHistoryController{orders: orders, session: sess, log: log, now: time.Now}
}

type OrderHistoryLoadResult struct {
	// Orders is sorted newest-first, ready for FilterOrders.
	Orders   []cart.Order
	Message  Message
	Redirect string
}

func (oc *OrderHistoryController) Load(ctx context.Context) OrderHistoryLoadResult {
	if _, err := oc.session.RequireToken(); err != nil {
		return OrderHistoryLoadResult{
			Message:  errorMsg("Please sign in to view your orders."),
			Redirect: PageSignIn,
		}
	}

	orders, err := oc.orders.List(ctx)
	if err != nil {
		oc.log.Warn("loading orders failed", zap.Error(err))
		return OrderHistoryLoadResult{Message: errorMsg("Failed to load your orders.")}
	}
	return OrderHistoryLoadResult{Orders: cart.SortOrders(orders)}
}

type OrderHistoryView struct {
	Range     string
	Summaries []cart.Summary
	Empty     bool
}

// View applies the selected range to an already loaded, already sorted
// order list and shapes each survivor for rendering.
func (oc *OrderHistoryController) View(orders []cart.Order, rng string) OrderHistoryView {
	filtered := cart.FilterOrders(orders, rng, oc.now())
	summaries := make([]cart.Summary, 0, len(filtered))
	for _, o := range filtered {
		summaries = append(summaries, cart.Summarize(o))
	}
	return OrderHistoryView{
		Range:     rng,
		Summaries: summaries,
		Empty:     len(summaries) == 0,
	}
}
