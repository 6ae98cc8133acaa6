package costing

import (
	"context"

	"github.com/greenbock/adplan/internal/logging"
	"github.com/greenbock/adplan/internal/sizing"
)

// Pathway operating line labels.
const (
	upgradingOpexLabel = "Biogas Upgrading O&M"
	chpOpexLabel       = "CHP Maintenance"
)

// Opex builds the annual operating cost breakdown. It strictly follows Capex:
// maintenance and insurance scale with the CAPEX total, and the biogas
// pathway's O&M line scales with the CAPEX upgrading line, read through the
// typed Pathway field.
func Opex(ctx context.Context, totalFeedstockTonnes, digesterVolume float64, pathway sizing.Pathway, capex CapexBreakdown, chpCapacityKW float64, p Params) OpexBreakdown {
	b := OpexBreakdown{
		Maintenance: p.MaintenanceFraction * capex.Total,
		Labor:       laborCost(digesterVolume, p),
		Consumables: totalFeedstockTonnes * p.ConsumablesPerTonne,
		Insurance:   p.InsuranceFraction * capex.Total,
		Utilities:   digesterVolume * p.UtilitiesPerM3,
	}

	switch pathway {
	case sizing.PathwayBiogas:
		b.Pathway = PathwayCost{
			Label:  upgradingOpexLabel,
			Amount: p.UpgradingOpexFraction * capex.Pathway.Amount,
		}
	case sizing.PathwayCHP:
		b.Pathway = PathwayCost{
			Label:  chpOpexLabel,
			Amount: chpCapacityKW * p.CHPOperatingHours * p.CHPMaintenancePerKWh,
		}
	}

	b.Total = b.Maintenance + b.Labor + b.Consumables +
		b.Insurance + b.Pathway.Amount + b.Utilities

	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "costing").
		Str("operation", "opex").
		Str("pathway", pathway.String()).
		Float64("total_opex", b.Total).
		Msg("operating cost breakdown built")

	return b
}

// laborCost steps the annual staffing cost by digester-volume tier.
func laborCost(digesterVolume float64, p Params) float64 {
	switch {
	case digesterVolume < laborSmallMaxM3:
		return p.LaborSmall
	case digesterVolume < laborMediumMaxM3:
		return p.LaborMedium
	default:
		return p.LaborLarge
	}
}
