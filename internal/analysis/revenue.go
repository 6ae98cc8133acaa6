package analysis

import "github.com/greenbock/adplan/internal/sizing"

// Revenue estimates annual sales from the energy outputs.
//
// The biogas pathway sells upgraded biomethane at the gas price. The CHP
// pathway sells all electrical output at the power price and the utilized
// share of thermal output at the heat price.
func Revenue(energy sizing.EnergyOutputs, p Parameters) float64 {
	if energy.Pathway == sizing.PathwayBiogas {
		return energy.BiogasEnergyGJ * p.BiogasPricePerGJ
	}

	return energy.ElectricalOutputMWh*p.ElectricityPricePerMWh +
		energy.ThermalOutputGJ*p.HeatUtilization*p.HeatPricePerGJ
}
