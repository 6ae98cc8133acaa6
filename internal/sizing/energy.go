package sizing

import "github.com/greenbock/adplan/internal/units"

// EfficiencyOptions overrides the conversion efficiencies used by
// EnergyOutputs. The zero value selects the defaults.
//
// Electrical and thermal efficiency are independent fractions; this function
// does not constrain their sum. The config loader warns when the configured
// sum exceeds 1 so misconfiguration is visible without altering results.
type EfficiencyOptions struct {
	// Upgrading is the biogas upgrading efficiency (biogas pathway).
	Upgrading float64

	// Electrical is the CHP electrical efficiency.
	Electrical float64

	// Thermal is the CHP thermal efficiency.
	Thermal float64
}

// withDefaults fills zero fields with the standard efficiencies.
func (o EfficiencyOptions) withDefaults() EfficiencyOptions {
	if o.Upgrading == 0 {
		o.Upgrading = DefaultUpgradingEfficiency
	}
	if o.Electrical == 0 {
		o.Electrical = DefaultElectricalEfficiency
	}
	if o.Thermal == 0 {
		o.Thermal = DefaultThermalEfficiency
	}
	return o
}

// EnergyOutputs holds annual energy production for the selected pathway.
// The biogas fields are populated only on PathwayBiogas, the electrical and
// thermal fields only on PathwayCHP.
type EnergyOutputs struct {
	// Pathway records which product pathway the figures describe.
	Pathway Pathway `json:"pathway"`

	// TotalEnergyKWh is the gross methane energy in kWh per year.
	TotalEnergyKWh float64 `json:"total_energy_kwh"`

	// TotalEnergyMWh is the gross methane energy in MWh per year.
	TotalEnergyMWh float64 `json:"total_energy_mwh"`

	// TotalEnergyGJ is the gross methane energy in GJ per year.
	TotalEnergyGJ float64 `json:"total_energy_gj"`

	// BiogasEnergyKWh is the deliverable upgraded energy in kWh per year.
	BiogasEnergyKWh float64 `json:"biogas_energy_kwh,omitempty"`

	// BiogasEnergyMWh is the deliverable upgraded energy in MWh per year.
	BiogasEnergyMWh float64 `json:"biogas_energy_mwh,omitempty"`

	// BiogasEnergyGJ is the deliverable upgraded energy in GJ per year.
	BiogasEnergyGJ float64 `json:"biogas_energy_gj,omitempty"`

	// ElectricalOutputKWh is the annual electrical production in kWh.
	ElectricalOutputKWh float64 `json:"electrical_output_kwh,omitempty"`

	// ElectricalOutputMWh is the annual electrical production in MWh.
	ElectricalOutputMWh float64 `json:"electrical_output_mwh,omitempty"`

	// ThermalOutputKWh is the annual thermal production in kWh.
	ThermalOutputKWh float64 `json:"thermal_output_kwh,omitempty"`

	// ThermalOutputMWh is the annual thermal production in MWh.
	ThermalOutputMWh float64 `json:"thermal_output_mwh,omitempty"`

	// ThermalOutputGJ is the annual thermal production in GJ.
	ThermalOutputGJ float64 `json:"thermal_output_gj,omitempty"`

	// PowerCapacityKW is the nameplate electrical capacity, annual output
	// spread over a full 8760-hour year.
	PowerCapacityKW float64 `json:"power_capacity_kw,omitempty"`

	// HeatCapacityKW is the nameplate thermal capacity.
	HeatCapacityKW float64 `json:"heat_capacity_kw,omitempty"`
}

// BiogasToEnergy converts an annual methane yield (Nm³/year) into energy
// outputs for the given pathway.
func BiogasToEnergy(methaneYieldNm3 float64, pathway Pathway, opts EfficiencyOptions) EnergyOutputs {
	opts = opts.withDefaults()

	totalKWh := methaneYieldNm3 * units.MethaneEnergyKWhPerNm3

	out := EnergyOutputs{
		Pathway:        pathway,
		TotalEnergyKWh: totalKWh,
		TotalEnergyMWh: totalKWh / units.KWhPerMWh,
		TotalEnergyGJ:  totalKWh * units.KWhToGJ,
	}

	switch pathway {
	case PathwayBiogas:
		out.BiogasEnergyKWh = totalKWh * opts.Upgrading
		out.BiogasEnergyMWh = out.BiogasEnergyKWh / units.KWhPerMWh
		out.BiogasEnergyGJ = out.BiogasEnergyKWh * units.KWhToGJ
	case PathwayCHP:
		out.ElectricalOutputKWh = totalKWh * opts.Electrical
		out.ElectricalOutputMWh = out.ElectricalOutputKWh / units.KWhPerMWh
		out.ThermalOutputKWh = totalKWh * opts.Thermal
		out.ThermalOutputMWh = out.ThermalOutputKWh / units.KWhPerMWh
		out.ThermalOutputGJ = out.ThermalOutputKWh * units.KWhToGJ
		out.PowerCapacityKW = out.ElectricalOutputKWh / units.HoursPerYear
		out.HeatCapacityKW = out.ThermalOutputKWh / units.HoursPerYear
	}

	return out
}

// PrimaryEnergyGJ returns the annual primary-product energy: upgraded
// biomethane for PathwayBiogas, electrical output for PathwayCHP. Heat is a
// by-product and is excluded; LCOE is levelized over this figure.
func (o EnergyOutputs) PrimaryEnergyGJ() float64 {
	if o.Pathway == PathwayBiogas {
		return o.BiogasEnergyGJ
	}
	return o.ElectricalOutputMWh * units.GJPerMWh
}
