package cart

import (
	"sort"
	"time"
)

// Range names for order-history filtering.
const (
	RangeLast30Days  = "30"
	RangeLast6Months = "180"
	RangeThisYear    = "year"
	RangeAll         = "all"
)

// SortOrders returns a copy sorted newest-created-first. Applied once right
// after load, before any filter.
func SortOrders(orders []Order) []Order {
	out := make([]Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// FilterOrders keeps orders at or after the cutoff implied by rng:
// "30" and "180" are day counts back from now, "year" is Jan 1 of now's
// year, and "all" (or anything unrecognized) passes everything through.
// The source slice is never mutated.
func FilterOrders(orders []Order, rng string, now time.Time) []Order {
	var cutoff time.Time
	switch rng {
	case RangeLast30Days:
		cutoff = now.AddDate(0, 0, -30)
	case RangeLast6Months:
		cutoff = now.AddDate(0, 0, -180)
	case RangeThisYear:
		cutoff = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		out := make([]Order, len(orders))
		copy(out, orders)
		return out
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if !o.CreatedAt.Before(cutoff) {
			out = append(out, o)
		}
	}
	return out
}
