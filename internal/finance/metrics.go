package finance

import (
	"context"
	"math"

	"github.com/greenbock/adplan/internal/logging"
)

// Metrics holds the project financial summary.
type Metrics struct {
	// NPV is the net present value of the equity cash flows in $.
	NPV float64 `json:"npv"`

	// IRR is the internal rate of return of the equity cash flows.
	IRR float64 `json:"irr"`

	// IRRConverged reports whether the IRR root-find converged; when
	// false the IRR is a best-effort estimate.
	IRRConverged bool `json:"irr_converged"`

	// PaybackYears is the first year the cumulative cash flow turns
	// non-negative. LifetimeYears+1 is the sentinel for "no payback
	// within the project lifetime".
	PaybackYears int `json:"payback_years"`

	// DSCR is the debt service coverage ratio, +Inf when the project
	// carries no debt service.
	DSCR float64 `json:"dscr"`

	// DebtAmount is the debt-financed share of CAPEX in $.
	DebtAmount float64 `json:"debt_amount"`

	// EquityAmount is the equity-financed share of CAPEX in $.
	EquityAmount float64 `json:"equity_amount"`

	// AnnualDebtService is the constant annual loan payment in $.
	AnnualDebtService float64 `json:"annual_debt_service"`

	// CashFlows is the year-indexed series the metrics were derived from.
	CashFlows []float64 `json:"cash_flows"`
}

// CalculateMetrics builds the cash-flow series for the given inputs and
// derives NPV (at in-discount rate), IRR, payback period, and DSCR.
func CalculateMetrics(ctx context.Context, in CashFlowInputs, discountRate float64) Metrics {
	debt := in.CapexTotal * in.DebtFraction
	equity := in.CapexTotal * (1 - in.DebtFraction)
	debtService := DebtService(debt, in.DebtRate, in.DebtTermYears)

	flows := BuildCashFlows(in)
	irr := IRR(flows)

	m := Metrics{
		NPV:               NPV(flows, discountRate),
		IRR:               irr.Rate,
		IRRConverged:      irr.Converged,
		PaybackYears:      payback(flows, in.LifetimeYears),
		DSCR:              dscr(in.AnnualRevenue, in.AnnualOpex, debtService),
		DebtAmount:        debt,
		EquityAmount:      equity,
		AnnualDebtService: debtService,
		CashFlows:         flows,
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "finance").
		Str("operation", "metrics").
		Float64("npv", m.NPV).
		Float64("irr", m.IRR).
		Bool("irr_converged", m.IRRConverged).
		Int("payback_years", m.PaybackYears).
		Msg("financial metrics calculated")

	if !m.IRRConverged {
		log.Warn().
			Str("component", "finance").
			Float64("irr_estimate", m.IRR).
			Msg("IRR search did not converge, estimate is unreliable")
	}

	return m
}

// payback returns the first year index at which the running cumulative cash
// flow becomes non-negative, or lifetime+1 when it never does.
func payback(flows []float64, lifetimeYears int) int {
	if len(flows) == 0 {
		return lifetimeYears + 1
	}

	cumulative := flows[0]
	if cumulative >= 0 {
		return 0
	}
	for year := 1; year < len(flows); year++ {
		cumulative += flows[year]
		if cumulative >= 0 {
			return year
		}
	}
	return lifetimeYears + 1
}

// dscr returns operating cash flow over debt service, +Inf with no debt.
func dscr(revenue, opex, debtService float64) float64 {
	if debtService <= 0 {
		return math.Inf(1)
	}
	return (revenue - opex) / debtService
}
