package finance

import "math"

// DebtService returns the constant annual payment of an amortizing loan
// using the standard annuity formula. When rate is zero the payment falls
// back to straight-line repayment; a non-positive term returns 0.
func DebtService(debt, rate float64, termYears int) float64 {
	if termYears <= 0 || debt <= 0 {
		return 0
	}
	if rate == 0 {
		return debt / float64(termYears)
	}

	compound := math.Pow(1+rate, float64(termYears))
	return debt * rate * compound / (compound - 1)
}
