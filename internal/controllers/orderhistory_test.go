package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/MahirAsef999/E-Buy/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHistoryLoad_SignedOutRedirects(t *testing.T) {
	oc := NewOrderHistoryController(&fakeOrders{}, &fakeSession{}, nil)

	result := oc.Load(context.Background())

	assert.Equal(t, PageSignIn, result.Redirect)
	assert.Equal(t, "Please sign in to view your orders.", result.Message.Text)
}

func TestOrderHistoryLoad_SortsNewestFirst(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	orders := &fakeOrders{
		listFunc: func(ctx context.Context) ([]cart.Order, error) {
			return []cart.Order{
				{ID: "old", CreatedAt: base},
				{ID: "new", CreatedAt: base.AddDate(0, 0, 5)},
			}, nil
		},
	}
	oc := NewOrderHistoryController(orders, &fakeSession{token: "tok"}, nil)

	result := oc.Load(context.Background())

	require.Len(t, result.Orders, 2)
	assert.Equal(t, "new", result.Orders[0].ID)
	assert.Equal(t, "old", result.Orders[1].ID)
}

func TestOrderHistoryView_FiltersLocally(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	oc := NewOrderHistoryController(&fakeOrders{}, &fakeSession{token: "tok"}, nil)
	oc.now = func() time.Time { return now }

	orders := []cart.Order{
		{ID: "recent", CreatedAt: now.AddDate(0, 0, -3)},
		{ID: "lastyear", CreatedAt: now.AddDate(-1, 0, 0)},
	}

	view := oc.View(orders, cart.RangeLast30Days)
	require.Len(t, view.Summaries, 1)
	assert.Equal(t, "recent", view.Summaries[0].OrderID)
	assert.False(t, view.Empty)

	view = oc.View(orders, cart.RangeAll)
	assert.Len(t, view.Summaries, 2)
}

func TestOrderHistoryView_EmptyRange(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	oc := NewOrderHistoryController(&fakeOrders{}, &fakeSession{token: "tok"}, nil)
	oc.now = func() time.Time { return now }

	orders := []cart.Order{{ID: "ancient", CreatedAt: now.AddDate(-3, 0, 0)}}

	view := oc.View(orders, cart.RangeLast30Days)

	assert.True(t, view.Empty)
	assert.Empty(t, view.Summaries)
}
