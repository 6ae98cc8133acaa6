package analysis

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/greenbock/adplan/internal/finance"
	"github.com/greenbock/adplan/internal/logging"
)

// Sensitivity sweep parameters.
const (
	// sensitivityConcurrency bounds the parallel LCOE recomputations.
	sensitivityConcurrency = 4
)

// sensitivityFactors are the multipliers applied to each swept parameter.
//
//nolint:gochecknoglobals // Read-only sweep grid.
var sensitivityFactors = []float64{0.8, 0.9, 1.0, 1.1, 1.2}

// SensitivityPoint is one LCOE evaluation of the sweep.
type SensitivityPoint struct {
	// Parameter names the swept input: "CAPEX", "OPEX", or
	// "Energy Output".
	Parameter string `json:"parameter"`

	// Factor is the multiplier applied to the parameter.
	Factor float64 `json:"factor"`

	// LCOE is the levelized cost at this point in $/GJ.
	LCOE float64 `json:"lcoe"`
}

// SensitivityResult holds the full sweep, ordered by parameter then factor.
type SensitivityResult struct {
	// ReportID links the sweep to the report it perturbs.
	ReportID string `json:"report_id"`

	// Points are the swept LCOE evaluations.
	Points []SensitivityPoint `json:"points"`
}

// Sensitivity recomputes LCOE for ±20% perturbations of CAPEX, OPEX, and
// energy output around the given report, discounting with the same lifetime
// and rate the report was built with.
//
// The LCOE function is referentially transparent, so the evaluations run
// concurrently under a bounded errgroup; each goroutine owns its own inputs
// and writes a distinct slice slot.
func Sensitivity(ctx context.Context, params Parameters, report *Report) SensitivityResult {
	log := logging.FromContext(ctx)
	start := time.Now()

	type job struct {
		parameter string
		factor    float64
		capex     float64
		opex      float64
		energy    float64
	}

	var jobs []job
	for _, f := range sensitivityFactors {
		jobs = append(jobs, job{"CAPEX", f, report.Capex.Total * f, report.Opex.Total, report.AnnualEnergyGJ})
	}
	for _, f := range sensitivityFactors {
		jobs = append(jobs, job{"OPEX", f, report.Capex.Total, report.Opex.Total * f, report.AnnualEnergyGJ})
	}
	for _, f := range sensitivityFactors {
		jobs = append(jobs, job{"Energy Output", f, report.Capex.Total, report.Opex.Total, report.AnnualEnergyGJ * f})
	}

	points := make([]SensitivityPoint, len(jobs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(sensitivityConcurrency)
	for i, j := range jobs {
		g.Go(func() error {
			points[i] = SensitivityPoint{
				Parameter: j.parameter,
				Factor:    j.factor,
				LCOE: finance.LCOE(j.capex, j.opex, j.energy,
					params.LifetimeYears, params.DiscountRate),
			}
			return nil
		})
	}
	// Jobs never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	sort.SliceStable(points, func(a, b int) bool {
		if points[a].Parameter != points[b].Parameter {
			return points[a].Parameter < points[b].Parameter
		}
		return points[a].Factor < points[b].Factor
	})

	log.Debug().
		Str("component", "analysis").
		Str("operation", "sensitivity").
		Str("report_id", report.ID).
		Int("points", len(points)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("sensitivity sweep complete")

	return SensitivityResult{ReportID: report.ID, Points: points}
}
