package feedstock

import (
	"context"

	"github.com/greenbock/adplan/internal/logging"
	"github.com/greenbock/adplan/internal/units"
)

// YieldAndCost derives yield, energy, and delivered-cost metrics for a single
// feedstock. The function is pure: it never mutates f and depends only on its
// arguments.
//
// A feedstock whose methane energy comes out non-positive reports zero cost
// per unit energy rather than NaN or infinity, since a stream with no usable
// yield contributes nothing to the blended energy cost.
func YieldAndCost(ctx context.Context, f Feedstock) Metrics {
	ts := f.TS / percentToFraction
	vs := f.VS / percentToFraction
	ch4 := f.CH4 / percentToFraction

	vsTonnes := f.Quantity * ts * vs
	biogas := vsTonnes * f.BMP
	methane := biogas * ch4

	energyKWh := methane * units.MethaneEnergyKWhPerNm3
	energyGJ := energyKWh * units.KWhToGJ

	transport := f.Quantity * f.Distance * TransportRatePerTonneKm
	purchase := f.Quantity * f.CostPerTonne
	total := transport + purchase

	var costPerGJ, costPerMWh float64
	if energyGJ > 0 {
		costPerGJ = total / energyGJ
		costPerMWh = costPerGJ * units.GJPerMWh
	} else if total > 0 {
		log := logging.FromContext(ctx)
		log.Warn().
			Str("component", "feedstock").
			Str("feedstock", f.Name).
			Float64("total_cost", total).
			Msg("feedstock has cost but no energy yield, cost per unit energy reported as zero")
	}

	return Metrics{
		Name:            f.Name,
		Quantity:        f.Quantity,
		VSTonnes:        vsTonnes,
		BiogasYieldNm3:  biogas,
		MethaneYieldNm3: methane,
		EnergyKWh:       energyKWh,
		EnergyGJ:        energyGJ,
		TransportCost:   transport,
		FeedstockCost:   purchase,
		TotalCost:       total,
		CostPerGJ:       costPerGJ,
		CostPerMWh:      costPerMWh,
	}
}

// Aggregate sums per-feedstock metrics into project totals.
//
// The weighted-average cost fields divide total cost by total energy and are
// zero when the set yields no energy; an empty slice returns all-zero Totals.
func Aggregate(metrics []Metrics) Totals {
	var t Totals
	for _, m := range metrics {
		t.Quantity += m.Quantity
		t.VSTonnes += m.VSTonnes
		t.BiogasYieldNm3 += m.BiogasYieldNm3
		t.MethaneYieldNm3 += m.MethaneYieldNm3
		t.EnergyGJ += m.EnergyGJ
		t.TransportCost += m.TransportCost
		t.FeedstockCost += m.FeedstockCost
		t.TotalCost += m.TotalCost
	}

	if t.EnergyGJ > 0 {
		t.AvgCostPerGJ = t.TotalCost / t.EnergyGJ
		t.AvgCostPerMWh = t.AvgCostPerGJ * units.GJPerMWh
	}

	t.BiogasOutputNm3h = t.BiogasYieldNm3 / units.HoursPerYear

	return t
}

// Scale returns a copy of f with its quantity multiplied by factor.
// The project scale multiplier is applied before yield calculation so every
// downstream figure reflects the scaled tonnage.
func Scale(f Feedstock, factor float64) Feedstock {
	f.Quantity *= factor
	return f
}
