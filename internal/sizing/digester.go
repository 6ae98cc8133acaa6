package sizing

import "github.com/greenbock/adplan/internal/units"

// DigesterVolume sizes the digester from the annual volatile-solids load
// using a steady-state organic-loading-rate heuristic (not a kinetic model).
//
// totalVSTonnes is the volatile-solids input in tonnes per year; loadingRate
// is in kg VS/m³/day and must be positive (pass DefaultLoadingRate for the
// standard 3.5). The returned volume is in m³.
func DigesterVolume(totalVSTonnes, loadingRate float64) (float64, error) {
	if loadingRate <= 0 {
		return 0, ErrInvalidLoadingRate
	}

	vsKgPerDay := totalVSTonnes * units.TonnesToKg / units.DaysPerYear
	return vsKgPerDay / loadingRate, nil
}
