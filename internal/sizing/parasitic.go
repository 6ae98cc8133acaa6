package sizing

import "github.com/greenbock/adplan/internal/units"

// ParasiticLoad holds the plant's annual self-consumption.
type ParasiticLoad struct {
	// LoadKWh is the annual parasitic consumption in kWh.
	LoadKWh float64 `json:"parasitic_load_kwh"`

	// LoadMWh is the annual parasitic consumption in MWh.
	LoadMWh float64 `json:"parasitic_load_mwh"`

	// Percentage is the parasitic share of gross energy production,
	// zero when the gross production is zero.
	Percentage float64 `json:"parasitic_load_percentage"`
}

// CalculateParasiticLoad estimates plant self-consumption from digester
// volume. The biogas pathway carries an extra multiplier for the upgrading
// system's cleaning and compression load.
//
// totalEnergyKWh is the gross annual methane energy used to express the load
// as a percentage; pass 0 when it is not yet known.
func CalculateParasiticLoad(digesterVolume float64, pathway Pathway, totalEnergyKWh float64) ParasiticLoad {
	factor := 1.0
	if pathway == PathwayBiogas {
		factor = UpgradingParasiticFactor
	}

	loadKWh := digesterVolume * BaseParasiticKWhPerM3 * factor

	var pct float64
	if totalEnergyKWh > 0 {
		pct = loadKWh / totalEnergyKWh * 100
	}

	return ParasiticLoad{
		LoadKWh:    loadKWh,
		LoadMWh:    loadKWh / units.KWhPerMWh,
		Percentage: pct,
	}
}
