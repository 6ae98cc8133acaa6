// Package feedstock models organic feedstocks for anaerobic digestion and
// converts their mass and quality attributes into biogas, methane, energy,
// and delivered-cost figures.
package feedstock

// Feedstock describes one feedstock stream in the active project set.
//
// TS, VS, and CH4 are stored as percentages (the form they appear in lab
// reports and in the built-in catalog) and are normalized to fractions
// exactly once, inside YieldAndCost.
type Feedstock struct {
	// Name identifies the feedstock; unique within a project.
	Name string `json:"name" yaml:"name"`

	// Quantity is the annual delivered mass in tonnes per year.
	Quantity float64 `json:"quantity" yaml:"quantity"`

	// TS is the total-solids content as a percentage of fresh mass.
	TS float64 `json:"ts" yaml:"ts"`

	// VS is the volatile-solids content as a percentage of total solids.
	VS float64 `json:"vs" yaml:"vs"`

	// BMP is the biochemical methane potential in Nm³ biogas per tonne of
	// volatile solids.
	BMP float64 `json:"bmp" yaml:"bmp"`

	// CH4 is the methane content of the produced biogas as a percentage.
	CH4 float64 `json:"ch4" yaml:"ch4"`

	// TKN is the total Kjeldahl nitrogen as a percentage of total solids.
	// Carried through for reporting; not consumed by the calculations.
	TKN float64 `json:"tkn" yaml:"tkn"`

	// TAN is the total ammoniacal nitrogen as a percentage of TKN.
	// Carried through for reporting; not consumed by the calculations.
	TAN float64 `json:"tan" yaml:"tan"`

	// Distance is the haul distance from source to plant in km.
	Distance float64 `json:"distance" yaml:"distance"`

	// CostPerTonne is the purchase cost at the gate in $ per tonne.
	CostPerTonne float64 `json:"cost_per_tonne" yaml:"cost_per_tonne"`
}

// Metrics holds the derived yield and cost figures for a single feedstock.
type Metrics struct {
	// Name echoes the feedstock name for rendering.
	Name string `json:"name"`

	// Quantity is the annual mass in tonnes per year after scaling.
	Quantity float64 `json:"quantity"`

	// VSTonnes is the volatile-solids mass in tonnes per year.
	VSTonnes float64 `json:"vs_tonnes"`

	// BiogasYieldNm3 is the biogas yield in Nm³ per year.
	BiogasYieldNm3 float64 `json:"biogas_yield_nm3"`

	// MethaneYieldNm3 is the methane yield in Nm³ per year.
	MethaneYieldNm3 float64 `json:"methane_yield_nm3"`

	// EnergyKWh is the methane energy content in kWh per year.
	EnergyKWh float64 `json:"energy_kwh"`

	// EnergyGJ is the methane energy content in GJ per year.
	EnergyGJ float64 `json:"energy_gj"`

	// TransportCost is the annual haulage cost in $.
	TransportCost float64 `json:"transport_cost"`

	// FeedstockCost is the annual purchase cost in $.
	FeedstockCost float64 `json:"feedstock_cost"`

	// TotalCost is transport plus purchase cost in $.
	TotalCost float64 `json:"total_cost"`

	// CostPerGJ is the delivered cost per GJ of methane energy.
	// Zero when the feedstock yields no energy.
	CostPerGJ float64 `json:"cost_per_gj"`

	// CostPerMWh is the delivered cost per MWh of methane energy.
	CostPerMWh float64 `json:"cost_per_mwh"`
}

// Totals aggregates Metrics across the active feedstock set.
type Totals struct {
	// Quantity is the total annual feedstock mass in tonnes per year.
	Quantity float64 `json:"quantity"`

	// VSTonnes is the total volatile-solids mass in tonnes per year.
	VSTonnes float64 `json:"vs_tonnes"`

	// BiogasYieldNm3 is the total biogas yield in Nm³ per year.
	BiogasYieldNm3 float64 `json:"biogas_yield_nm3"`

	// MethaneYieldNm3 is the total methane yield in Nm³ per year.
	MethaneYieldNm3 float64 `json:"methane_yield_nm3"`

	// EnergyGJ is the total methane energy content in GJ per year.
	EnergyGJ float64 `json:"energy_gj"`

	// TransportCost is the total annual haulage cost in $.
	TransportCost float64 `json:"transport_cost"`

	// FeedstockCost is the total annual purchase cost in $.
	FeedstockCost float64 `json:"feedstock_cost"`

	// TotalCost is the total annual delivered cost in $.
	TotalCost float64 `json:"total_cost"`

	// AvgCostPerGJ is the energy-weighted average delivered cost per GJ.
	// Zero when the set yields no energy.
	AvgCostPerGJ float64 `json:"avg_cost_per_gj"`

	// AvgCostPerMWh is the energy-weighted average delivered cost per MWh.
	AvgCostPerMWh float64 `json:"avg_cost_per_mwh"`

	// BiogasOutputNm3h is the mean biogas output rate in Nm³ per hour.
	BiogasOutputNm3h float64 `json:"biogas_output_nm3h"`
}
