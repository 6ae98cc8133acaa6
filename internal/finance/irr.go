package finance

// IRR bracketing and convergence parameters.
const (
	// irrBracketLow is the lower bound of the IRR search in fractional
	// terms; rates below -99% make the discount factor blow up.
	irrBracketLow = -0.99

	// irrBracketHigh is the upper bound of the IRR search (1000%).
	irrBracketHigh = 10.0

	// irrTolerance is the rate interval width at which bisection stops.
	irrTolerance = 1e-7

	// irrMaxIterations caps the bisection loop.
	irrMaxIterations = 100
)

// IRRResult carries the internal rate of return and whether the root-find
// converged.
type IRRResult struct {
	// Rate is the best IRR estimate found.
	Rate float64 `json:"rate"`

	// Converged reports whether NPV actually crosses zero inside the
	// search bracket and the bisection tightened to tolerance. When false,
	// Rate is a best-effort estimate and should not be trusted for
	// investment decisions.
	Converged bool `json:"converged"`
}

// IRR finds the discount rate at which the cash-flow series' NPV is zero,
// by bisection over [irrBracketLow, irrBracketHigh].
//
// Conventional project cash flows (one sign change: negative outlay followed
// by positive returns) have at most one root in the bracket. Pathological
// shapes — all-positive or all-negative series, or flows with multiple sign
// changes whose roots fall outside the bracket — yield Converged=false with
// the midpoint of the last bracket as the estimate.
func IRR(flows []float64) IRRResult {
	lo, hi := irrBracketLow, irrBracketHigh
	npvLo := NPV(flows, lo)
	npvHi := NPV(flows, hi)

	// No sign change across the bracket means no root to bisect toward.
	if npvLo*npvHi > 0 {
		return IRRResult{Rate: 0, Converged: false}
	}

	mid := 0.0
	for i := 0; i < irrMaxIterations; i++ {
		mid = (lo + hi) / 2
		npvMid := NPV(flows, mid)

		if hi-lo < irrTolerance {
			return IRRResult{Rate: mid, Converged: true}
		}

		if npvLo*npvMid <= 0 {
			hi = mid
		} else {
			lo = mid
			npvLo = npvMid
		}
	}

	return IRRResult{Rate: mid, Converged: false}
}
