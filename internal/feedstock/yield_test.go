package feedstock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYieldAndCost(t *testing.T) {
	tests := []struct {
		name            string
		input           Feedstock
		wantVSTonnes    float64
		wantBiogasNm3   float64
		wantMethaneNm3  float64
		wantCostPerGJ   float64
		checkCostPerGJ  bool
		wantZeroCostPer bool
	}{
		{
			// Reference scenario: the catalog Meat feedstock.
			name: "meat reference values",
			input: Feedstock{
				Name: "Meat", Quantity: 2622,
				TS: 32.0, VS: 92.0, BMP: 628.4, CH4: 60.0,
				Distance: 50, CostPerTonne: 20,
			},
			wantVSTonnes:   771.9,  // 2622 * 0.32 * 0.92
			wantBiogasNm3:  485094, // vs * 628.4
			wantMethaneNm3: 291056, // biogas * 0.60
		},
		{
			name: "zero BMP yields no energy and zero cost per GJ",
			input: Feedstock{
				Name: "Inert", Quantity: 1000,
				TS: 30, VS: 80, BMP: 0, CH4: 60,
				Distance: 20, CostPerTonne: 5,
			},
			wantZeroCostPer: true,
		},
		{
			name: "zero quantity yields all zeros",
			input: Feedstock{
				Name: "Empty", Quantity: 0,
				TS: 30, VS: 80, BMP: 400, CH4: 60,
			},
			wantZeroCostPer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YieldAndCost(context.Background(), tt.input)

			if tt.wantZeroCostPer {
				assert.Zero(t, got.CostPerGJ, "cost per GJ must be zero, never NaN or Inf")
				assert.Zero(t, got.CostPerMWh)
				return
			}

			assert.InDelta(t, tt.wantVSTonnes, got.VSTonnes, 0.5)
			assert.InDelta(t, tt.wantBiogasNm3, got.BiogasYieldNm3, 100)
			assert.InDelta(t, tt.wantMethaneNm3, got.MethaneYieldNm3, 100)
			assert.Positive(t, got.EnergyGJ)
			assert.Positive(t, got.CostPerGJ)
			// Cost identity: transport + purchase = total.
			assert.InDelta(t, got.TransportCost+got.FeedstockCost, got.TotalCost, 1e-9)
		})
	}
}

func TestYieldAndCostTransport(t *testing.T) {
	f := Feedstock{Name: "Straw", Quantity: 100, TS: 85, VS: 75, BMP: 350, CH4: 51, Distance: 120, CostPerTonne: 25}
	got := YieldAndCost(context.Background(), f)

	// 100 t * 120 km * 0.10 $/t-km
	assert.InDelta(t, 1200.0, got.TransportCost, 1e-9)
	assert.InDelta(t, 2500.0, got.FeedstockCost, 1e-9)
}

func TestAggregate(t *testing.T) {
	t.Run("empty set returns all-zero totals", func(t *testing.T) {
		got := Aggregate(nil)
		assert.Zero(t, got.Quantity)
		assert.Zero(t, got.EnergyGJ)
		assert.Zero(t, got.AvgCostPerGJ, "no division by zero on empty set")
		assert.Zero(t, got.BiogasOutputNm3h)
	})

	t.Run("weighted average cost", func(t *testing.T) {
		metrics := []Metrics{
			{Quantity: 100, EnergyGJ: 200, TotalCost: 400, BiogasYieldNm3: 8760},
			{Quantity: 50, EnergyGJ: 100, TotalCost: 500, BiogasYieldNm3: 8760},
		}
		got := Aggregate(metrics)

		assert.InDelta(t, 150.0, got.Quantity, 1e-9)
		assert.InDelta(t, 300.0, got.EnergyGJ, 1e-9)
		assert.InDelta(t, 3.0, got.AvgCostPerGJ, 1e-9) // 900 / 300
		assert.InDelta(t, 10.8, got.AvgCostPerMWh, 1e-9)
		assert.InDelta(t, 2.0, got.BiogasOutputNm3h, 1e-9) // 17520 / 8760
	})

	t.Run("zero-energy set keeps average at zero", func(t *testing.T) {
		metrics := []Metrics{{Quantity: 10, TotalCost: 100}}
		got := Aggregate(metrics)
		assert.Zero(t, got.AvgCostPerGJ)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("lookup known feedstock", func(t *testing.T) {
		f, err := FromCatalog("Meat")
		require.NoError(t, err)
		assert.Equal(t, "Meat", f.Name)
		assert.InDelta(t, 628.4, f.BMP, 1e-9)
	})

	t.Run("lookup unknown feedstock", func(t *testing.T) {
		_, err := FromCatalog("Plutonium")
		assert.ErrorIs(t, err, ErrUnknownFeedstock)
	})

	t.Run("catalog is sorted and complete", func(t *testing.T) {
		catalog := Catalog()
		require.Len(t, catalog, 7)
		assert.Equal(t, "Blood Filter Cake", catalog[0].Name)

		names := CatalogNames()
		require.Len(t, names, 7)
		for i, f := range catalog {
			assert.Equal(t, names[i], f.Name)
		}
	})
}

func TestScale(t *testing.T) {
	f := Feedstock{Name: "Meat", Quantity: 2622}
	scaled := Scale(f, 1.5)

	assert.InDelta(t, 3933.0, scaled.Quantity, 1e-9)
	assert.InDelta(t, 2622.0, f.Quantity, 1e-9, "input must not be mutated")
}
