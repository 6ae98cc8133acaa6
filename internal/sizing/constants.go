package sizing

const (
	// DefaultLoadingRate is the organic loading rate in kg VS/m³/day used
	// for steady-state digester sizing.
	DefaultLoadingRate = 3.5

	// DefaultUpgradingEfficiency accounts for methane losses during biogas
	// cleaning and compression on the biomethane pathway.
	DefaultUpgradingEfficiency = 0.98

	// DefaultElectricalEfficiency is the CHP engine electrical efficiency.
	DefaultElectricalEfficiency = 0.40

	// DefaultThermalEfficiency is the CHP engine thermal efficiency.
	DefaultThermalEfficiency = 0.45

	// BaseParasiticKWhPerM3 is the plant self-consumption per m³ of
	// digester volume per year.
	BaseParasiticKWhPerM3 = 80.0

	// UpgradingParasiticFactor is the extra self-consumption multiplier for
	// the biogas upgrading pathway (cleaning and compression load).
	UpgradingParasiticFactor = 1.5

	// DefaultVSDestruction is the fraction of volatile solids destroyed in
	// digestion.
	DefaultVSDestruction = 0.7

	// SolidDigestateFraction is the solid share of digestate mass after
	// separation; the remainder is the liquid fraction.
	SolidDigestateFraction = 0.25

	// LiquidDigestateFraction is the liquid share of digestate mass.
	LiquidDigestateFraction = 0.75

	// MinUnitLoadFraction is the minimum part-load a CHP unit may run at;
	// the greedy sizer only adds a unit while the remaining target covers
	// this fraction of it.
	MinUnitLoadFraction = 0.8

	// ResidualCapacityThresholdKW is the leftover capacity above which the
	// sizer appends one final smaller unit.
	ResidualCapacityThresholdKW = 50.0
)

// chpUnitCatalogKW lists the available CHP generator sizes in kW.
//
//nolint:gochecknoglobals // Read-only catalog of discrete generator sizes.
var chpUnitCatalogKW = []float64{100, 250, 500, 800, 1000, 1500, 2000}
