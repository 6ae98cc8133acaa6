// Package analysis orchestrates the full bioenergy project assessment: the
// feedstock yield model, process sizing, cost models, and financial solver,
// executed in strict forward order over a caller-owned Project.
//
// The package holds no state between calls; every Run is a pure function of
// its Project, so independent invocations (sensitivity sweeps, comparisons)
// are safe to execute concurrently.
package analysis

import (
	"github.com/greenbock/adplan/internal/costing"
	"github.com/greenbock/adplan/internal/feedstock"
	"github.com/greenbock/adplan/internal/sizing"
)

// Parameters holds the project-scope inputs: scale, process assumptions,
// prices, and the financing structure.
type Parameters struct {
	// Scale multiplies every feedstock quantity before yield calculation.
	Scale float64 `json:"scale" yaml:"scale"`

	// LoadingRate is the digester organic loading rate in kg VS/m³/day.
	LoadingRate float64 `json:"loading_rate" yaml:"loading_rate"`

	// VSDestruction is the fraction of volatile solids destroyed in
	// digestion, used for digestate production.
	VSDestruction float64 `json:"vs_destruction" yaml:"vs_destruction"`

	// LifetimeYears is the project lifetime for discounting.
	LifetimeYears int `json:"lifetime_years" yaml:"lifetime_years"`

	// DiscountRate is the discount rate for NPV and LCOE.
	DiscountRate float64 `json:"discount_rate" yaml:"discount_rate"`

	// DebtFraction is the share of CAPEX financed by debt, in [0,1].
	DebtFraction float64 `json:"debt_fraction" yaml:"debt_fraction"`

	// DebtRate is the annual interest rate on debt.
	DebtRate float64 `json:"debt_rate" yaml:"debt_rate"`

	// DebtTermYears is the loan term in years.
	DebtTermYears int `json:"debt_term_years" yaml:"debt_term_years"`

	// TaxRate is the corporate tax rate.
	TaxRate float64 `json:"tax_rate" yaml:"tax_rate"`

	// HeatUtilization is the fraction of CHP thermal output that finds a
	// paying heat customer.
	HeatUtilization float64 `json:"heat_utilization" yaml:"heat_utilization"`

	// BiogasPricePerGJ is the biomethane sales price in $/GJ.
	BiogasPricePerGJ float64 `json:"biogas_price_per_gj" yaml:"biogas_price_per_gj"`

	// ElectricityPricePerMWh is the power sales price in $/MWh.
	ElectricityPricePerMWh float64 `json:"electricity_price_per_mwh" yaml:"electricity_price_per_mwh"`

	// HeatPricePerGJ is the heat sales price in $/GJ.
	HeatPricePerGJ float64 `json:"heat_price_per_gj" yaml:"heat_price_per_gj"`
}

// DefaultParameters returns the reference project parameters.
func DefaultParameters() Parameters {
	return Parameters{
		Scale:                  1.0,
		LoadingRate:            sizing.DefaultLoadingRate,
		VSDestruction:          sizing.DefaultVSDestruction,
		LifetimeYears:          20,
		DiscountRate:           0.08,
		DebtFraction:           0.70,
		DebtRate:               0.05,
		DebtTermYears:          10,
		TaxRate:                0.30,
		HeatUtilization:        0.5,
		BiogasPricePerGJ:       15,
		ElectricityPricePerMWh: 100,
		HeatPricePerGJ:         10,
	}
}

// Project is the caller-owned session object: the active feedstock set plus
// every adjustable parameter. The engine reads it and never retains or
// mutates it.
type Project struct {
	// Name labels the project in reports.
	Name string `json:"name" yaml:"name"`

	// Pathway selects the product pathway.
	Pathway sizing.Pathway `json:"pathway" yaml:"-"`

	// Feedstocks is the active feedstock set. Names must be unique.
	Feedstocks []feedstock.Feedstock `json:"feedstocks" yaml:"feedstocks"`

	// Params are the project-scope parameters.
	Params Parameters `json:"params" yaml:"params"`

	// Costs are the cost-model unit rates.
	Costs costing.Params `json:"costs" yaml:"costs"`

	// Efficiency overrides the energy conversion efficiencies.
	Efficiency sizing.EfficiencyOptions `json:"efficiency" yaml:"-"`

	// Sizer selects CHP units; nil uses the greedy default.
	Sizer sizing.UnitSizer `json:"-" yaml:"-"`
}
