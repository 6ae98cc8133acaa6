package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/greenbock/adplan/internal/costing"
	"github.com/greenbock/adplan/internal/feedstock"
	"github.com/greenbock/adplan/internal/finance"
	"github.com/greenbock/adplan/internal/logging"
	"github.com/greenbock/adplan/internal/sizing"
)

// Report is the structured result of a full project assessment.
type Report struct {
	// ID is a ULID identifying this run.
	ID string `json:"id"`

	// GeneratedAt is the report timestamp.
	GeneratedAt time.Time `json:"generated_at"`

	// Project echoes the project name.
	Project string `json:"project"`

	// Pathway is the product pathway the assessment was run for.
	Pathway string `json:"pathway"`

	// Feedstocks holds the per-feedstock yield and cost metrics, sorted
	// by name.
	Feedstocks []feedstock.Metrics `json:"feedstocks"`

	// Totals aggregates the feedstock metrics.
	Totals feedstock.Totals `json:"totals"`

	// DigesterVolumeM3 is the sized digester volume.
	DigesterVolumeM3 float64 `json:"digester_volume_m3"`

	// Energy holds the pathway energy outputs.
	Energy sizing.EnergyOutputs `json:"energy"`

	// Parasitic is the plant self-consumption.
	Parasitic sizing.ParasiticLoad `json:"parasitic"`

	// Digestate is the digestate production split.
	Digestate sizing.DigestateSplit `json:"digestate"`

	// CHP is the selected generator configuration; nil on the biogas
	// pathway.
	CHP *sizing.CHPConfiguration `json:"chp,omitempty"`

	// Capex is the capital cost breakdown.
	Capex costing.CapexBreakdown `json:"capex"`

	// Opex is the annual operating cost breakdown.
	Opex costing.OpexBreakdown `json:"opex"`

	// AnnualRevenue is the estimated annual sales in $.
	AnnualRevenue float64 `json:"annual_revenue"`

	// AnnualEnergyGJ is the annual primary-product energy LCOE is
	// levelized over: biomethane on the biogas pathway, electrical output
	// on CHP.
	AnnualEnergyGJ float64 `json:"annual_energy_gj"`

	// LCOE is the levelized cost of energy in $/GJ.
	LCOE float64 `json:"lcoe"`

	// Financial is the project financial summary.
	Financial finance.Metrics `json:"financial"`
}

// Run executes the full assessment pipeline over project.
//
// Data flows strictly forward: feedstocks → per-feedstock metrics →
// aggregated totals → digester sizing → energy outputs → CAPEX → OPEX →
// revenue → LCOE → financial metrics. Nothing in project is mutated.
func Run(ctx context.Context, project Project) (*Report, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if len(project.Feedstocks) == 0 {
		return nil, ErrNoFeedstocks
	}
	if err := checkUniqueNames(project.Feedstocks); err != nil {
		return nil, err
	}

	params := project.Params
	if params.Scale == 0 {
		params.Scale = 1.0
	}
	if params.LoadingRate == 0 {
		params.LoadingRate = sizing.DefaultLoadingRate
	}
	if params.VSDestruction == 0 {
		params.VSDestruction = sizing.DefaultVSDestruction
	}

	// Yield model.
	metrics := make([]feedstock.Metrics, 0, len(project.Feedstocks))
	for _, f := range project.Feedstocks {
		metrics = append(metrics, feedstock.YieldAndCost(ctx, feedstock.Scale(f, params.Scale)))
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i].Name < metrics[j].Name })
	totals := feedstock.Aggregate(metrics)

	// Process sizing.
	volume, err := sizing.DigesterVolume(totals.VSTonnes, params.LoadingRate)
	if err != nil {
		return nil, fmt.Errorf("sizing digester: %w", err)
	}

	energy := sizing.BiogasToEnergy(totals.MethaneYieldNm3, project.Pathway, project.Efficiency)
	parasitic := sizing.CalculateParasiticLoad(volume, project.Pathway, energy.TotalEnergyKWh)
	digestate := sizing.DigestateProduction(ctx, totals.Quantity, totals.VSTonnes, params.VSDestruction)

	var chp *sizing.CHPConfiguration
	if project.Pathway == sizing.PathwayCHP {
		sizer := project.Sizer
		if sizer == nil {
			sizer = sizing.GreedySizer{}
		}
		cfg := sizer.SizeUnits(energy.PowerCapacityKW)
		chp = &cfg
	}

	// Cost models. OPEX strictly follows CAPEX.
	capex := costing.Capex(ctx, volume, project.Pathway, energy.PowerCapacityKW, project.Costs)
	opex := costing.Opex(ctx, totals.Quantity, volume, project.Pathway, capex, energy.PowerCapacityKW, project.Costs)

	// Financial solver.
	revenue := Revenue(energy, params)
	annualEnergy := energy.PrimaryEnergyGJ()
	lcoe := finance.LCOE(capex.Total, opex.Total, annualEnergy, params.LifetimeYears, params.DiscountRate)

	financial := finance.CalculateMetrics(ctx, finance.CashFlowInputs{
		CapexTotal:    capex.Total,
		AnnualOpex:    opex.Total,
		AnnualRevenue: revenue,
		LifetimeYears: params.LifetimeYears,
		DebtFraction:  params.DebtFraction,
		DebtRate:      params.DebtRate,
		DebtTermYears: params.DebtTermYears,
		TaxRate:       params.TaxRate,
	}, params.DiscountRate)

	report := &Report{
		ID:               ulid.Make().String(),
		GeneratedAt:      time.Now().UTC(),
		Project:          project.Name,
		Pathway:          project.Pathway.String(),
		Feedstocks:       metrics,
		Totals:           totals,
		DigesterVolumeM3: volume,
		Energy:           energy,
		Parasitic:        parasitic,
		Digestate:        digestate,
		CHP:              chp,
		Capex:            capex,
		Opex:             opex,
		AnnualRevenue:    revenue,
		AnnualEnergyGJ:   annualEnergy,
		LCOE:             lcoe,
		Financial:        financial,
	}

	log.Info().
		Str("component", "analysis").
		Str("operation", "run").
		Str("report_id", report.ID).
		Str("pathway", report.Pathway).
		Int("feedstock_count", len(metrics)).
		Float64("lcoe", report.LCOE).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("project assessment complete")

	return report, nil
}

// checkUniqueNames rejects projects where two feedstocks share a name.
func checkUniqueNames(feedstocks []feedstock.Feedstock) error {
	seen := make(map[string]struct{}, len(feedstocks))
	for _, f := range feedstocks {
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: %q", feedstock.ErrDuplicateFeedstock, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
