package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/greenbock/adplan/internal/analysis"
	"github.com/greenbock/adplan/internal/feedstock"
	"github.com/greenbock/adplan/internal/format"
)

// isWriterTerminal reports whether w is an interactive terminal. Styled
// output is reserved for terminals; pipes and files get plain text.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// sectionTitle renders a section header, bold cyan on terminals.
func sectionTitle(w io.Writer, title string) {
	if isWriterTerminal(w) {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
		fmt.Fprintln(w, style.Render(title))
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

// RenderReport writes the full assessment report as aligned text tables.
func RenderReport(w io.Writer, report *analysis.Report) error {
	fmt.Fprintf(w, "Project: %s  (pathway: %s, report %s)\n\n", report.Project, report.Pathway, report.ID)

	sectionTitle(w, "Feedstocks")
	fmt.Fprintf(w, "%-20s %12s %14s %14s %12s %10s\n",
		"Name", "Tonnes/yr", "Biogas Nm3", "Methane Nm3", "Energy GJ", "$/GJ")
	for _, m := range report.Feedstocks {
		fmt.Fprintf(w, "%-20s %12s %14s %14s %12s %10s\n",
			m.Name,
			format.Float(m.Quantity, 0),
			format.Float(m.BiogasYieldNm3, 0),
			format.Float(m.MethaneYieldNm3, 0),
			format.Float(m.EnergyGJ, 0),
			format.Float(m.CostPerGJ, 2))
	}
	t := report.Totals
	fmt.Fprintf(w, "%-20s %12s %14s %14s %12s %10s\n\n",
		"TOTAL",
		format.Float(t.Quantity, 0),
		format.Float(t.BiogasYieldNm3, 0),
		format.Float(t.MethaneYieldNm3, 0),
		format.Float(t.EnergyGJ, 0),
		format.Float(t.AvgCostPerGJ, 2))

	sectionTitle(w, "Process Sizing")
	fmt.Fprintf(w, "%-32s %14s m3\n", "Digester volume", format.Float(report.DigesterVolumeM3, 0))
	fmt.Fprintf(w, "%-32s %14s Nm3/h\n", "Biogas output rate", format.Float(t.BiogasOutputNm3h, 1))
	fmt.Fprintf(w, "%-32s %14s MWh/yr\n", "Parasitic load", format.Float(report.Parasitic.LoadMWh, 1))
	fmt.Fprintf(w, "%-32s %14s t/yr (solid %s / liquid %s)\n",
		"Digestate",
		format.Float(report.Digestate.TotalTonnes, 0),
		format.Float(report.Digestate.SolidTonnes, 0),
		format.Float(report.Digestate.LiquidTonnes, 0))
	if report.CHP != nil {
		fmt.Fprintf(w, "%-32s %d units, %s kW installed (%s utilization)\n",
			"CHP configuration",
			report.CHP.UnitCount,
			format.Float(report.CHP.InstalledCapacityKW, 0),
			format.Percent(report.CHP.Utilization))
	}
	fmt.Fprintln(w)

	sectionTitle(w, "Energy Outputs")
	e := report.Energy
	fmt.Fprintf(w, "%-32s %14s MWh/yr\n", "Gross methane energy", format.Float(e.TotalEnergyMWh, 0))
	if report.CHP != nil {
		fmt.Fprintf(w, "%-32s %14s MWh/yr (%s kW)\n", "Electrical output",
			format.Float(e.ElectricalOutputMWh, 0), format.Float(e.PowerCapacityKW, 0))
		fmt.Fprintf(w, "%-32s %14s MWh/yr (%s kW)\n", "Thermal output",
			format.Float(e.ThermalOutputMWh, 0), format.Float(e.HeatCapacityKW, 0))
	} else {
		fmt.Fprintf(w, "%-32s %14s GJ/yr\n", "Upgraded biomethane", format.Float(e.BiogasEnergyGJ, 0))
	}
	fmt.Fprintln(w)

	sectionTitle(w, "Capital Costs")
	for _, item := range report.Capex.LineItems() {
		fmt.Fprintf(w, "%-32s %14s\n", item.Label, format.Money(item.Amount))
	}
	fmt.Fprintf(w, "%-32s %14s\n\n", "Total CAPEX", format.Money(report.Capex.Total))

	sectionTitle(w, "Operating Costs (annual)")
	for _, item := range report.Opex.LineItems() {
		fmt.Fprintf(w, "%-32s %14s\n", item.Label, format.Money(item.Amount))
	}
	fmt.Fprintf(w, "%-32s %14s\n\n", "Total OPEX", format.Money(report.Opex.Total))

	sectionTitle(w, "Financials")
	fin := report.Financial
	fmt.Fprintf(w, "%-32s %14s\n", "Annual revenue", format.Money(report.AnnualRevenue))
	fmt.Fprintf(w, "%-32s %14s /GJ\n", "LCOE", format.Float(report.LCOE, 2))
	fmt.Fprintf(w, "%-32s %14s\n", "NPV", format.Money(fin.NPV))
	irr := format.Percent(fin.IRR)
	if !fin.IRRConverged {
		irr += " (did not converge)"
	}
	fmt.Fprintf(w, "%-32s %14s\n", "IRR", irr)
	payback := fmt.Sprintf("%d years", fin.PaybackYears)
	if fin.PaybackYears >= len(fin.CashFlows) {
		// Sentinel value lifetime+1 means the cumulative cash flow never
		// turned non-negative.
		payback = "no payback within lifetime"
	}
	fmt.Fprintf(w, "%-32s %14s\n", "Payback period", payback)
	dscr := "n/a (no debt)"
	if !math.IsInf(fin.DSCR, 1) {
		dscr = format.Float(fin.DSCR, 2)
	}
	fmt.Fprintf(w, "%-32s %14s\n", "Debt service coverage", dscr)
	fmt.Fprintf(w, "%-32s %14s /yr\n", "Debt service", format.Money(fin.AnnualDebtService))

	return nil
}

// RenderSensitivity writes the LCOE sweep as a table grouped by parameter.
func RenderSensitivity(w io.Writer, report *analysis.Report, result analysis.SensitivityResult) error {
	fmt.Fprintf(w, "LCOE sensitivity around report %s (base LCOE %s /GJ)\n\n",
		report.ID, format.Float(report.LCOE, 2))

	sectionTitle(w, "Sensitivity")
	fmt.Fprintf(w, "%-16s %8s %12s\n", "Parameter", "Change", "LCOE $/GJ")
	for _, p := range result.Points {
		fmt.Fprintf(w, "%-16s %+7.0f%% %12s\n", p.Parameter, (p.Factor-1)*100, format.Float(p.LCOE, 2))
	}
	return nil
}

// RenderCatalog writes the built-in feedstock library as a table.
func RenderCatalog(w io.Writer, catalog []feedstock.Feedstock) error {
	sectionTitle(w, "Feedstock Library")
	fmt.Fprintf(w, "%-20s %10s %6s %6s %8s %6s %8s %8s\n",
		"Name", "Tonnes/yr", "TS%", "VS%", "BMP", "CH4%", "Dist km", "$/tonne")
	for _, f := range catalog {
		fmt.Fprintf(w, "%-20s %10s %6.1f %6.1f %8.1f %6.1f %8.0f %8.0f\n",
			f.Name, format.Float(f.Quantity, 0), f.TS, f.VS, f.BMP, f.CH4, f.Distance, f.CostPerTonne)
	}
	return nil
}
