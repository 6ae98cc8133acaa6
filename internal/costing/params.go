package costing

// Params holds the unit cost rates and proportional factors of the cost
// model. All rates are overridable through configuration; DefaultParams
// returns the reference values.
type Params struct {
	// DigesterCostPerM3 is the digester construction cost in $/m³.
	DigesterCostPerM3 float64 `json:"digester_cost_per_m3" yaml:"digester_cost_per_m3"`

	// ReceptionFraction sizes reception and pre-treatment as a fraction of
	// digester cost.
	ReceptionFraction float64 `json:"reception_fraction" yaml:"reception_fraction"`

	// BiogasHandlingFraction sizes biogas handling as a fraction of
	// digester cost.
	BiogasHandlingFraction float64 `json:"biogas_handling_fraction" yaml:"biogas_handling_fraction"`

	// DigestateHandlingFraction sizes digestate handling as a fraction of
	// digester cost.
	DigestateHandlingFraction float64 `json:"digestate_handling_fraction" yaml:"digestate_handling_fraction"`

	// ControlSystemsFraction sizes control systems as a fraction of
	// digester cost.
	ControlSystemsFraction float64 `json:"control_systems_fraction" yaml:"control_systems_fraction"`

	// UpgradingCostPerM3h is the biogas upgrading system cost in $ per
	// m³/h of raw biogas flow.
	UpgradingCostPerM3h float64 `json:"upgrading_cost_per_m3h" yaml:"upgrading_cost_per_m3h"`

	// CHPCostPerKW is the CHP system cost in $/kW installed.
	CHPCostPerKW float64 `json:"chp_cost_per_kw" yaml:"chp_cost_per_kw"`

	// EPCFraction sizes engineering, procurement, and construction as a
	// fraction of the equipment subtotal.
	EPCFraction float64 `json:"epc_fraction" yaml:"epc_fraction"`

	// ContingencyFraction sizes contingency as a fraction of subtotal
	// plus EPC.
	ContingencyFraction float64 `json:"contingency_fraction" yaml:"contingency_fraction"`

	// MaintenanceFraction is annual maintenance as a fraction of total
	// CAPEX.
	MaintenanceFraction float64 `json:"maintenance_fraction" yaml:"maintenance_fraction"`

	// LaborSmall, LaborMedium, LaborLarge are the stepped annual labor
	// costs in $ for the three digester-volume tiers.
	LaborSmall  float64 `json:"labor_small" yaml:"labor_small"`
	LaborMedium float64 `json:"labor_medium" yaml:"labor_medium"`
	LaborLarge  float64 `json:"labor_large" yaml:"labor_large"`

	// ConsumablesPerTonne is the annual consumables cost in $ per tonne of
	// feedstock.
	ConsumablesPerTonne float64 `json:"consumables_per_tonne" yaml:"consumables_per_tonne"`

	// InsuranceFraction is annual insurance as a fraction of total CAPEX.
	InsuranceFraction float64 `json:"insurance_fraction" yaml:"insurance_fraction"`

	// UpgradingOpexFraction is the upgrading O&M as a fraction of the
	// upgrading CAPEX line.
	UpgradingOpexFraction float64 `json:"upgrading_opex_fraction" yaml:"upgrading_opex_fraction"`

	// CHPOperatingHours is the assumed CHP operating hours per year.
	CHPOperatingHours float64 `json:"chp_operating_hours" yaml:"chp_operating_hours"`

	// CHPMaintenancePerKWh is the CHP maintenance rate in $/kWh produced.
	CHPMaintenancePerKWh float64 `json:"chp_maintenance_per_kwh" yaml:"chp_maintenance_per_kwh"`

	// UtilitiesPerM3 is the annual utilities cost in $ per m³ of digester.
	UtilitiesPerM3 float64 `json:"utilities_per_m3" yaml:"utilities_per_m3"`
}

// Labor tier breakpoints in m³ of digester volume.
const (
	laborSmallMaxM3  = 2000.0
	laborMediumMaxM3 = 5000.0
)

// rawBiogasVolumeFactor is the multiple of digester volume used to estimate
// annual raw biogas flow when the CAPEX model is called without yield data.
// A rough proxy, not the feedstock-derived rate.
const rawBiogasVolumeFactor = 1.5

// DefaultParams returns the reference cost rates.
func DefaultParams() Params {
	return Params{
		DigesterCostPerM3:         500,
		ReceptionFraction:         0.15,
		BiogasHandlingFraction:    0.10,
		DigestateHandlingFraction: 0.12,
		ControlSystemsFraction:    0.08,
		UpgradingCostPerM3h:       10000,
		CHPCostPerKW:              1500,
		EPCFraction:               0.15,
		ContingencyFraction:       0.10,
		MaintenanceFraction:       0.03,
		LaborSmall:                150000,
		LaborMedium:               250000,
		LaborLarge:                350000,
		ConsumablesPerTonne:       2.5,
		InsuranceFraction:         0.01,
		UpgradingOpexFraction:     0.05,
		CHPOperatingHours:         8000,
		CHPMaintenancePerKWh:      0.02,
		UtilitiesPerM3:            15,
	}
}
