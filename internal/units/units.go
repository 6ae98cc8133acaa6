// Package units holds the physical constants and unit conversions shared by
// the yield, sizing, and costing calculations.
//
// Keeping them in one place guarantees every consumer converts methane volume
// to energy with the same factors; a mismatch here would silently skew LCOE.
package units

const (
	// MethaneEnergyKWhPerNm3 is the lower heating value of methane in kWh
	// per normal cubic metre.
	MethaneEnergyKWhPerNm3 = 9.97

	// KWhToGJ converts kilowatt-hours to gigajoules.
	KWhToGJ = 0.0036

	// GJPerMWh converts megawatt-hours to gigajoules (1 MWh = 3.6 GJ).
	GJPerMWh = 3.6

	// KWhPerMWh converts megawatt-hours to kilowatt-hours.
	KWhPerMWh = 1000.0

	// TonnesToKg converts metric tonnes to kilograms.
	TonnesToKg = 1000.0

	// DaysPerYear is the day count used to convert annual mass flows to
	// daily loading rates.
	DaysPerYear = 365.0

	// HoursPerYear is the full-year hour count used for nameplate capacity
	// and flow-rate conversions.
	HoursPerYear = 8760.0
)
