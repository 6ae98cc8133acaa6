package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbock/adplan/internal/costing"
	"github.com/greenbock/adplan/internal/feedstock"
	"github.com/greenbock/adplan/internal/finance"
	"github.com/greenbock/adplan/internal/sizing"
)

// testProject builds a small two-feedstock project from the catalog.
func testProject(t *testing.T, pathway sizing.Pathway) Project {
	t.Helper()

	meat, err := feedstock.FromCatalog("Meat")
	require.NoError(t, err)
	litter, err := feedstock.FromCatalog("Chicken Litter")
	require.NoError(t, err)

	return Project{
		Name:       "test plant",
		Pathway:    pathway,
		Feedstocks: []feedstock.Feedstock{meat, litter},
		Params:     DefaultParameters(),
		Costs:      costing.DefaultParams(),
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("chp pathway end to end", func(t *testing.T) {
		report, err := Run(ctx, testProject(t, sizing.PathwayCHP))
		require.NoError(t, err)

		assert.NotEmpty(t, report.ID)
		assert.Equal(t, "test plant", report.Project)
		assert.Equal(t, "chp", report.Pathway)

		require.Len(t, report.Feedstocks, 2)
		assert.Equal(t, "Chicken Litter", report.Feedstocks[0].Name, "metrics sorted by name")
		assert.Equal(t, "Meat", report.Feedstocks[1].Name)

		assert.Positive(t, report.Totals.EnergyGJ)
		assert.Positive(t, report.DigesterVolumeM3)
		assert.Positive(t, report.Energy.ElectricalOutputKWh)
		assert.Positive(t, report.Digestate.TotalTonnes)

		require.NotNil(t, report.CHP)
		assert.Positive(t, report.CHP.InstalledCapacityKW)

		assert.Positive(t, report.Capex.Total)
		assert.Equal(t, "CHP System", report.Capex.Pathway.Label)
		assert.Positive(t, report.Opex.Total)
		assert.Positive(t, report.AnnualRevenue)
		assert.Positive(t, report.LCOE)
		assert.Len(t, report.Financial.CashFlows, 21)
	})

	t.Run("chp lcoe is levelized over electrical output only", func(t *testing.T) {
		report, err := Run(ctx, testProject(t, sizing.PathwayCHP))
		require.NoError(t, err)

		assert.InDelta(t, report.Energy.ElectricalOutputMWh*3.6, report.AnnualEnergyGJ, 1e-6,
			"thermal output must not enter the LCOE denominator")
		want := finance.LCOE(report.Capex.Total, report.Opex.Total, report.AnnualEnergyGJ,
			DefaultParameters().LifetimeYears, DefaultParameters().DiscountRate)
		assert.InDelta(t, want, report.LCOE, 1e-9)
	})

	t.Run("biogas pathway has no chp configuration", func(t *testing.T) {
		report, err := Run(ctx, testProject(t, sizing.PathwayBiogas))
		require.NoError(t, err)

		assert.Nil(t, report.CHP)
		assert.Equal(t, "Biogas Upgrading System", report.Capex.Pathway.Label)
		assert.Positive(t, report.Energy.BiogasEnergyGJ)
		assert.Zero(t, report.Energy.ElectricalOutputKWh)
	})

	t.Run("empty feedstock set is rejected", func(t *testing.T) {
		project := testProject(t, sizing.PathwayCHP)
		project.Feedstocks = nil

		_, err := Run(ctx, project)
		assert.ErrorIs(t, err, ErrNoFeedstocks)
	})

	t.Run("duplicate feedstock names are rejected", func(t *testing.T) {
		project := testProject(t, sizing.PathwayCHP)
		project.Feedstocks = append(project.Feedstocks, project.Feedstocks[0])

		_, err := Run(ctx, project)
		assert.ErrorIs(t, err, feedstock.ErrDuplicateFeedstock)
	})

	t.Run("scale multiplies throughput", func(t *testing.T) {
		base, err := Run(ctx, testProject(t, sizing.PathwayCHP))
		require.NoError(t, err)

		doubled := testProject(t, sizing.PathwayCHP)
		doubled.Params.Scale = 2.0
		scaled, err := Run(ctx, doubled)
		require.NoError(t, err)

		assert.InDelta(t, 2*base.Totals.Quantity, scaled.Totals.Quantity, 1e-6)
		assert.InDelta(t, 2*base.Totals.EnergyGJ, scaled.Totals.EnergyGJ, 1e-6)
		assert.InDelta(t, 2*base.DigesterVolumeM3, scaled.DigesterVolumeM3, 1e-6)
	})

	t.Run("project is not mutated", func(t *testing.T) {
		project := testProject(t, sizing.PathwayCHP)
		project.Params.Scale = 0 // defaulted inside Run
		before := project.Feedstocks[0].Quantity

		_, err := Run(ctx, project)
		require.NoError(t, err)

		assert.Zero(t, project.Params.Scale)
		assert.InDelta(t, before, project.Feedstocks[0].Quantity, 1e-9)
	})
}

func TestRevenue(t *testing.T) {
	p := DefaultParameters()

	t.Run("biogas sells biomethane", func(t *testing.T) {
		energy := sizing.EnergyOutputs{Pathway: sizing.PathwayBiogas, BiogasEnergyGJ: 1000}
		assert.InDelta(t, 15000.0, Revenue(energy, p), 1e-9)
	})

	t.Run("chp sells power and utilized heat", func(t *testing.T) {
		energy := sizing.EnergyOutputs{
			Pathway:             sizing.PathwayCHP,
			ElectricalOutputMWh: 100,
			ThermalOutputGJ:     500,
		}
		// 100 MWh * $100 + 500 GJ * 0.5 * $10.
		assert.InDelta(t, 12500.0, Revenue(energy, p), 1e-9)
		assert.InDelta(t, 0.5, p.HeatUtilization, 1e-9, "only half the heat finds a customer by default")
	})
}

func TestSensitivity(t *testing.T) {
	ctx := context.Background()

	project := testProject(t, sizing.PathwayCHP)
	report, err := Run(ctx, project)
	require.NoError(t, err)

	result := Sensitivity(ctx, project.Params, report)

	assert.Equal(t, report.ID, result.ReportID)
	require.Len(t, result.Points, 15, "3 parameters x 5 factors")

	t.Run("ordered by parameter then factor", func(t *testing.T) {
		for i := 1; i < len(result.Points); i++ {
			prev, cur := result.Points[i-1], result.Points[i]
			if prev.Parameter == cur.Parameter {
				assert.Less(t, prev.Factor, cur.Factor)
			} else {
				assert.Less(t, prev.Parameter, cur.Parameter)
			}
		}
	})

	t.Run("unit factor reproduces the base LCOE", func(t *testing.T) {
		var found int
		for _, p := range result.Points {
			if p.Factor == 1.0 {
				assert.InDelta(t, report.LCOE, p.LCOE, 1e-9, "parameter %s", p.Parameter)
				found++
			}
		}
		assert.Equal(t, 3, found)
	})

	t.Run("more capex means higher lcoe", func(t *testing.T) {
		var low, high float64
		for _, p := range result.Points {
			if p.Parameter != "CAPEX" {
				continue
			}
			switch p.Factor {
			case 0.8:
				low = p.LCOE
			case 1.2:
				high = p.LCOE
			}
		}
		assert.Greater(t, high, low)
	})
}
