package costing

import (
	"context"

	"github.com/greenbock/adplan/internal/logging"
	"github.com/greenbock/adplan/internal/sizing"
	"github.com/greenbock/adplan/internal/units"
)

// Pathway line labels. The OPEX model reads the CAPEX pathway line through
// the typed field, so these labels exist purely for rendering.
const (
	upgradingCapexLabel = "Biogas Upgrading System"
	chpCapexLabel       = "CHP System"
)

// Capex builds the capital cost breakdown for a plant of the given digester
// volume and pathway. chpCapacityKW is consumed only on sizing.PathwayCHP.
//
// The biogas upgrading line is sized from a flow rate estimated as a fixed
// multiple of digester volume spread over the year; callers computing CAPEX
// without yield data get an approximation of the true feedstock-derived rate.
func Capex(ctx context.Context, digesterVolume float64, pathway sizing.Pathway, chpCapacityKW float64, p Params) CapexBreakdown {
	digester := digesterVolume * p.DigesterCostPerM3

	b := CapexBreakdown{
		Digester:          digester,
		Reception:         p.ReceptionFraction * digester,
		BiogasHandling:    p.BiogasHandlingFraction * digester,
		DigestateHandling: p.DigestateHandlingFraction * digester,
		ControlSystems:    p.ControlSystemsFraction * digester,
	}

	switch pathway {
	case sizing.PathwayBiogas:
		biogasOutputM3h := digesterVolume * rawBiogasVolumeFactor / units.HoursPerYear
		b.Pathway = PathwayCost{
			Label:  upgradingCapexLabel,
			Amount: biogasOutputM3h * p.UpgradingCostPerM3h,
		}
	case sizing.PathwayCHP:
		b.Pathway = PathwayCost{
			Label:  chpCapexLabel,
			Amount: chpCapacityKW * p.CHPCostPerKW,
		}
	}

	subtotal := b.Digester + b.Reception + b.BiogasHandling +
		b.DigestateHandling + b.ControlSystems + b.Pathway.Amount
	b.EPC = p.EPCFraction * subtotal
	b.Contingency = p.ContingencyFraction * (subtotal + b.EPC)
	b.Total = subtotal + b.EPC + b.Contingency

	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "costing").
		Str("operation", "capex").
		Str("pathway", pathway.String()).
		Float64("digester_volume_m3", digesterVolume).
		Float64("total_capex", b.Total).
		Msg("capital cost breakdown built")

	return b
}
