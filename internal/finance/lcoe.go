// Package finance implements the project-finance calculations: levelized
// cost of energy, debt amortization, cash-flow construction, NPV, a
// bracketed-bisection IRR, payback period, and debt service coverage.
//
// Every function is pure over its numeric arguments; the package holds no
// state and is safe for concurrent sensitivity sweeps.
package finance

import "math"

// LCOE computes the levelized cost of energy as the ratio of discounted
// lifetime costs to discounted lifetime energy output.
//
// CAPEX enters undiscounted at year 0; OPEX and energy output are assumed
// constant across years 1..lifetime (no escalation, degradation, or
// availability curve) and discounted at discountRate. Returns 0 when
// annualEnergyOutput is non-positive or the discounted energy sums to zero,
// guarding division by zero.
func LCOE(capexTotal, annualOpex, annualEnergyOutput float64, lifetimeYears int, discountRate float64) float64 {
	if annualEnergyOutput <= 0 {
		return 0
	}

	pvCosts := capexTotal
	pvEnergy := 0.0
	for year := 1; year <= lifetimeYears; year++ {
		discount := math.Pow(1+discountRate, float64(year))
		pvCosts += annualOpex / discount
		pvEnergy += annualEnergyOutput / discount
	}

	if pvEnergy <= 0 {
		return 0
	}
	return pvCosts / pvEnergy
}
