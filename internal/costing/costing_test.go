package costing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbock/adplan/internal/sizing"
)

// sumLines totals a breakdown's line items.
func sumLines(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Amount
	}
	return sum
}

func TestCapex(t *testing.T) {
	ctx := context.Background()
	p := DefaultParams()

	t.Run("biogas pathway breakdown", func(t *testing.T) {
		got := Capex(ctx, 1000, sizing.PathwayBiogas, 0, p)

		assert.InDelta(t, 500000.0, got.Digester, 1e-6)
		assert.InDelta(t, 75000.0, got.Reception, 1e-6)
		assert.InDelta(t, 50000.0, got.BiogasHandling, 1e-6)
		assert.InDelta(t, 60000.0, got.DigestateHandling, 1e-6)
		assert.InDelta(t, 40000.0, got.ControlSystems, 1e-6)
		assert.Equal(t, "Biogas Upgrading System", got.Pathway.Label)
		// (1000*1.5/8760) * 10000
		assert.InDelta(t, 1712.33, got.Pathway.Amount, 0.01)
	})

	t.Run("chp pathway breakdown", func(t *testing.T) {
		got := Capex(ctx, 1000, sizing.PathwayCHP, 400, p)

		assert.Equal(t, "CHP System", got.Pathway.Label)
		assert.InDelta(t, 600000.0, got.Pathway.Amount, 1e-6) // 400 kW * 1500
	})

	t.Run("total equals sum of line items", func(t *testing.T) {
		cases := []struct {
			volume   float64
			pathway  sizing.Pathway
			capacity float64
		}{
			{0, sizing.PathwayBiogas, 0},
			{500, sizing.PathwayBiogas, 0},
			{1000, sizing.PathwayCHP, 0},
			{2500, sizing.PathwayCHP, 350},
			{10000, sizing.PathwayCHP, 2000},
		}
		for _, c := range cases {
			got := Capex(ctx, c.volume, c.pathway, c.capacity, p)
			assert.InDelta(t, sumLines(got.LineItems()), got.Total, 1e-6,
				"volume=%v pathway=%v", c.volume, c.pathway)
		}
	})

	t.Run("EPC and contingency proportions", func(t *testing.T) {
		got := Capex(ctx, 1000, sizing.PathwayCHP, 400, p)

		subtotal := got.Digester + got.Reception + got.BiogasHandling +
			got.DigestateHandling + got.ControlSystems + got.Pathway.Amount
		assert.InDelta(t, 0.15*subtotal, got.EPC, 1e-6)
		assert.InDelta(t, 0.10*(subtotal+got.EPC), got.Contingency, 1e-6)
	})
}

func TestOpex(t *testing.T) {
	ctx := context.Background()
	p := DefaultParams()

	t.Run("labor steps by digester volume", func(t *testing.T) {
		tests := []struct {
			name   string
			volume float64
			want   float64
		}{
			{name: "small plant", volume: 1999, want: 150000},
			{name: "medium plant", volume: 2000, want: 250000},
			{name: "medium upper bound", volume: 4999, want: 250000},
			{name: "large plant", volume: 5000, want: 350000},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				capex := Capex(ctx, tt.volume, sizing.PathwayCHP, 0, p)
				got := Opex(ctx, 0, tt.volume, sizing.PathwayCHP, capex, 0, p)
				assert.InDelta(t, tt.want, got.Labor, 1e-9)
			})
		}
	})

	t.Run("biogas pathway line follows capex upgrading line", func(t *testing.T) {
		capex := Capex(ctx, 1000, sizing.PathwayBiogas, 0, p)
		got := Opex(ctx, 5000, 1000, sizing.PathwayBiogas, capex, 0, p)

		assert.Equal(t, "Biogas Upgrading O&M", got.Pathway.Label)
		assert.InDelta(t, 0.05*capex.Pathway.Amount, got.Pathway.Amount, 1e-9)
	})

	t.Run("chp maintenance from capacity and hours", func(t *testing.T) {
		capex := Capex(ctx, 1000, sizing.PathwayCHP, 400, p)
		got := Opex(ctx, 5000, 1000, sizing.PathwayCHP, capex, 400, p)

		assert.Equal(t, "CHP Maintenance", got.Pathway.Label)
		assert.InDelta(t, 400*8000*0.02, got.Pathway.Amount, 1e-9) // 64,000
	})

	t.Run("maintenance and insurance scale with capex total", func(t *testing.T) {
		capex := Capex(ctx, 3000, sizing.PathwayCHP, 800, p)
		got := Opex(ctx, 20000, 3000, sizing.PathwayCHP, capex, 800, p)

		assert.InDelta(t, 0.03*capex.Total, got.Maintenance, 1e-6)
		assert.InDelta(t, 0.01*capex.Total, got.Insurance, 1e-6)
		assert.InDelta(t, 50000.0, got.Consumables, 1e-6) // 20000 t * 2.5
		assert.InDelta(t, 45000.0, got.Utilities, 1e-6)   // 3000 m3 * 15
	})

	t.Run("total equals sum of line items", func(t *testing.T) {
		for _, pathway := range []sizing.Pathway{sizing.PathwayBiogas, sizing.PathwayCHP} {
			capex := Capex(ctx, 1500, pathway, 300, p)
			got := Opex(ctx, 8000, 1500, pathway, capex, 300, p)
			require.InDelta(t, sumLines(got.LineItems()), got.Total, 1e-6, "pathway=%v", pathway)
		}
	})
}
