//go:build unit

package pricing_test

import (
	"testing"

	"salonflow/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestSubtotalCents(t *testing.T) {
	tests := []struct {
		name     string
		services []pricing.Line
		sets     []pricing.Line
		want     int64
	}{
		{
			name: "services only",
			services: []pricing.Line{
				{UnitPriceCents: 500, Quantity: 2},
				{UnitPriceCents: 600, Quantity: 1},
			},
			want: 1600,
		},
		{
			name: "sets priced at sale price regardless of constituents",
			sets: []pricing.Line{
				{UnitPriceCents: 2500, Quantity: 1},
			},
			want: 2500,
		},
		{
			name: "mixed",
			services: []pricing.Line{
				{UnitPriceCents: 1000, Quantity: 1},
			},
			sets: []pricing.Line{
				{UnitPriceCents: 2500, Quantity: 2},
			},
			want: 6000,
		},
		{
			name: "empty",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.SubtotalCents(tt.services, tt.sets))
		})
	}
}

func TestGrandTotalCents(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		discount int64
		want     int64
	}{
		{name: "no discount", subtotal: 1000, discount: 0, want: 1000},
		{name: "partial discount", subtotal: 1000, discount: 300, want: 700},
		{name: "discount equals subtotal", subtotal: 1000, discount: 1000, want: 0},
		{name: "discount larger than subtotal floors at zero", subtotal: 1000, discount: 1500, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.GrandTotalCents(tt.subtotal, tt.discount))
		})
	}
}

func TestCommissionBasisCents(t *testing.T) {
	adjusted := int64(800)

	t.Run("falls back to standard price", func(t *testing.T) {
		item := pricing.SetItem{StandardPriceCents: 1200}
		assert.Equal(t, int64(1200), pricing.CommissionBasisCents(item))
	})

	t.Run("adjusted price wins when present", func(t *testing.T) {
		item := pricing.SetItem{StandardPriceCents: 1200, AdjustedPriceCents: &adjusted}
		assert.Equal(t, int64(800), pricing.CommissionBasisCents(item))
	})

	t.Run("zero adjusted price is still an override", func(t *testing.T) {
		zero := int64(0)
		item := pricing.SetItem{StandardPriceCents: 1200, AdjustedPriceCents: &zero}
		assert.Equal(t, int64(0), pricing.CommissionBasisCents(item))
	})
}
