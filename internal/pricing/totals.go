package pricing

import "math"

// DiscountRate is the fixed rate applied by the discount toggle.
const DiscountRate = 0.10

// Totals are the derived financial fields of an order.
type Totals struct {
	Total      float64 `json:"total"`
	BalanceDue float64 `json:"liquidar"`
}

// Recompute derives total and balance due. A negative balance means the
// customer overpaid and is returned as is.
func Recompute(subtotal, discount, paid float64) Totals {
	total := roundCents(subtotal - discount)
	return Totals{
		Total:      total,
		BalanceDue: roundCents(total - paid),
	}
}

// ToggleDiscount flips between no discount and 10% of the subtotal.
// Any non-zero current discount is treated as "applied" and removed.
func ToggleDiscount(current, subtotal float64) float64 {
	if current != 0 {
		return 0
	}
	return roundCents(subtotal * DiscountRate)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
