package cart

import (
	"fmt"

	"github.com/MahirAsef999/E-Buy/internal/catalog"
)

// SummaryLine is one display row of an order breakdown.
type SummaryLine struct {
	Name      string
	ImageURL  string
	UnitPrice float64
	Qty       int
	LineTotal float64
}

// Summary is a display-ready order breakdown.
type Summary struct {
	OrderID   string
	Status    string
	Date      string
	ItemCount int
	Lines     []SummaryLine
	Subtotal  float64
	Tax       float64
	Total     float64
}

// Summarize shapes an order for rendering: a long-form date, per-item rows
// with resolved image references, and subtotal/tax/total lines. When the
// backend omits subtotal or tax they are derived from the item lines.
func Summarize(o Order) Summary {
	lines := make([]SummaryLine, 0, len(o.Items))
	derived := 0.0
	for _, it := range o.Items {
		name := it.DisplayName()
		lineTotal := it.Price * float64(it.Qty)
		derived += lineTotal
		lines = append(lines, SummaryLine{
			Name:      name,
			ImageURL:  catalog.ImageURL(name),
			UnitPrice: it.Price,
			Qty:       it.Qty,
			LineTotal: lineTotal,
		})
	}

	subtotal := o.Subtotal
	if subtotal == 0 {
		subtotal = derived
	}
	tax := o.Tax
	if tax == 0 && o.Total == nil {
		tax = RoundCents(subtotal * TaxRate)
	}
	total := subtotal + tax
	if o.Total != nil {
		total = *o.Total
	}

	return Summary{
		OrderID:   o.ID,
		Status:    o.Status,
		Date:      o.CreatedAt.Format("January 2, 2006"),
		ItemCount: len(o.Items),
		Lines:     lines,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
	}
}

// FormatUSD renders an amount the way the storefront displays money.
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
