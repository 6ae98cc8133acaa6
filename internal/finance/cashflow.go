package finance

import "math"

// interestShareOfDebtService is the assumed interest portion of each debt
// payment for the simplified tax base (no amortization schedule is built).
const interestShareOfDebtService = 0.30

// CashFlowInputs parameterizes the project cash-flow series.
type CashFlowInputs struct {
	// CapexTotal is the full capital cost in $.
	CapexTotal float64

	// AnnualOpex is the constant annual operating cost in $.
	AnnualOpex float64

	// AnnualRevenue is the constant annual revenue in $.
	AnnualRevenue float64

	// LifetimeYears is the project lifetime; the series has
	// LifetimeYears+1 entries.
	LifetimeYears int

	// DebtFraction is the share of CAPEX financed by debt, in [0,1].
	DebtFraction float64

	// DebtRate is the annual interest rate on debt.
	DebtRate float64

	// DebtTermYears is the loan term; debt service applies only while
	// year <= term.
	DebtTermYears int

	// TaxRate is the corporate tax rate applied to positive taxable
	// income.
	TaxRate float64
}

// BuildCashFlows constructs the equity cash-flow series indexed by year
// 0..LifetimeYears.
//
// Year 0 is the negative equity outlay. Each following year is revenue minus
// OPEX, minus debt service while the loan runs, minus tax. The tax base is
// operating income less the assumed interest portion of debt service; tax is
// floored at zero (no loss carry-forward, no depreciation shield).
func BuildCashFlows(in CashFlowInputs) []float64 {
	debt := in.CapexTotal * in.DebtFraction
	equity := in.CapexTotal * (1 - in.DebtFraction)
	debtService := DebtService(debt, in.DebtRate, in.DebtTermYears)

	flows := make([]float64, 0, in.LifetimeYears+1)
	flows = append(flows, -equity)

	for year := 1; year <= in.LifetimeYears; year++ {
		cf := in.AnnualRevenue - in.AnnualOpex

		taxable := in.AnnualRevenue - in.AnnualOpex
		if year <= in.DebtTermYears {
			cf -= debtService
			taxable -= debtService * interestShareOfDebtService
		}

		cf -= math.Max(0, taxable*in.TaxRate)
		flows = append(flows, cf)
	}

	return flows
}

// NPV discounts the cash-flow series at rate. Index 0 is treated as year 0
// and enters undiscounted.
func NPV(flows []float64, rate float64) float64 {
	if len(flows) == 0 {
		return 0
	}

	npv := flows[0]
	for year := 1; year < len(flows); year++ {
		npv += flows[year] / math.Pow(1+rate, float64(year))
	}
	return npv
}
