package cart

import "math"

// Totals is the display-ready money breakdown for a set of line items.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals sums line totals without intermediate rounding, then rounds
// the tax half-up at the cent. Total = subtotal + tax.
func ComputeTotals(items []Item) Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	tax := RoundCents(subtotal * TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// RoundCents rounds to two decimal places, half away from zero (half-up for
// the non-negative amounts used here).
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
