// Package pricing holds the pure money math for bookings. All amounts are
// integer cents; discounts are flat currency amounts, never factors.
package pricing

// Line is one priced booking line: a service at its unit price, or a service
// set at its bundle sale price. A set's sale price may be discounted below
// the sum of its constituent services; the constituents never participate in
// the payable total.
type Line struct {
	UnitPriceCents int64
	Quantity       int
}

func LineTotalCents(unitPriceCents int64, quantity int) int64 {
	return unitPriceCents * int64(quantity)
}

func SubtotalCents(services []Line, sets []Line) int64 {
	var total int64
	for _, l := range services {
		total += LineTotalCents(l.UnitPriceCents, l.Quantity)
	}
	for _, l := range sets {
		total += LineTotalCents(l.UnitPriceCents, l.Quantity)
	}
	return total
}

// GrandTotalCents applies the flat grand discount, floored at zero. A
// discount larger than the subtotal never produces a negative total.
func GrandTotalCents(subtotalCents, grandDiscountCents int64) int64 {
	total := subtotalCents - grandDiscountCents
	if total < 0 {
		return 0
	}
	return total
}

// SetItem is one constituent service inside a service set. AdjustedPriceCents
// overrides the standard price for commission accounting only.
type SetItem struct {
	StandardPriceCents int64
	AdjustedPriceCents *int64
}

// CommissionBasisCents is the per-item amount commission is computed from.
// It is independent of the set's sale price and never feeds the grand total.
func CommissionBasisCents(item SetItem) int64 {
	if item.AdjustedPriceCents != nil {
		return *item.AdjustedPriceCents
	}
	return item.StandardPriceCents
}
