package config

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/greenbock/adplan/internal/analysis"
	"github.com/greenbock/adplan/internal/costing"
	"github.com/greenbock/adplan/internal/feedstock"
	"github.com/greenbock/adplan/internal/sizing"
)

// projectSchemaConstraint is the range of project-file schema versions this
// build understands. Files written for a newer major schema are rejected
// instead of being silently misread.
const projectSchemaConstraint = "^1"

// FeedstockEntry is one feedstock row of a project file. A row either
// references a built-in catalog entry by name (with optional field
// overrides) or specifies a feedstock inline.
type FeedstockEntry struct {
	// Catalog references a built-in library entry. When set, the
	// remaining fields override the catalog values where non-zero.
	Catalog string `yaml:"catalog"`

	feedstock.Feedstock `yaml:",inline"`
}

// EfficiencyConfig overrides the energy conversion efficiencies.
type EfficiencyConfig struct {
	Upgrading  float64 `yaml:"upgrading"`
	Electrical float64 `yaml:"electrical"`
	Thermal    float64 `yaml:"thermal"`
}

// ProjectFile is the on-disk project description.
type ProjectFile struct {
	// Version is the schema version of the file, checked against
	// projectSchemaConstraint.
	Version string `yaml:"version"`

	// Name labels the project in reports.
	Name string `yaml:"name"`

	// Pathway is "biogas" or "chp".
	Pathway string `yaml:"pathway"`

	// Feedstocks is the active feedstock set.
	Feedstocks []FeedstockEntry `yaml:"feedstocks"`

	// Params overrides the default project parameters; zero fields keep
	// the defaults.
	Params analysis.Parameters `yaml:"params"`

	// Costs overrides the default cost rates; zero fields keep the
	// defaults.
	Costs costing.Params `yaml:"costs"`

	// Efficiency overrides the conversion efficiencies.
	Efficiency EfficiencyConfig `yaml:"efficiency"`
}

// LoadProject reads and resolves a project file into an analysis.Project.
//
// Resolution order: schema version gate, pathway parse, catalog references,
// then parameter defaulting. The loader warns (without failing) when the
// configured CHP efficiencies sum above 1, since the sizing model leaves
// that deliberately unconstrained.
func LoadProject(path string) (*analysis.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	}

	var pf ProjectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}

	return ResolveProject(&pf)
}

// ResolveProject turns a parsed ProjectFile into an analysis.Project.
func ResolveProject(pf *ProjectFile) (*analysis.Project, error) {
	if err := checkSchemaVersion(pf.Version); err != nil {
		return nil, err
	}

	pathway, err := sizing.ParsePathway(pf.Pathway)
	if err != nil {
		return nil, err
	}

	feedstocks := make([]feedstock.Feedstock, 0, len(pf.Feedstocks))
	for _, entry := range pf.Feedstocks {
		f, resolveErr := resolveFeedstock(entry)
		if resolveErr != nil {
			return nil, resolveErr
		}
		feedstocks = append(feedstocks, f)
	}

	params := mergeParameters(pf.Params)
	costs := mergeCosts(pf.Costs)
	eff := sizing.EfficiencyOptions{
		Upgrading:  pf.Efficiency.Upgrading,
		Electrical: pf.Efficiency.Electrical,
		Thermal:    pf.Efficiency.Thermal,
	}
	warnEfficiencySum(pathway, eff)

	return &analysis.Project{
		Name:       pf.Name,
		Pathway:    pathway,
		Feedstocks: feedstocks,
		Params:     params,
		Costs:      costs,
		Efficiency: eff,
	}, nil
}

// checkSchemaVersion validates the file's schema version against the
// supported range. An empty version is accepted as the current schema.
func checkSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid project file version %q: %w", version, err)
	}

	constraint, err := semver.NewConstraint(projectSchemaConstraint)
	if err != nil {
		return fmt.Errorf("invalid schema constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("project file version %s is not supported by this build (want %s)",
			version, projectSchemaConstraint)
	}
	return nil
}

// resolveFeedstock materializes a file entry, starting from the catalog when
// referenced and applying non-zero overrides on top.
func resolveFeedstock(entry FeedstockEntry) (feedstock.Feedstock, error) {
	if entry.Catalog == "" {
		return entry.Feedstock, nil
	}

	base, err := feedstock.FromCatalog(entry.Catalog)
	if err != nil {
		return feedstock.Feedstock{}, fmt.Errorf("resolving feedstock %q: %w", entry.Catalog, err)
	}

	o := entry.Feedstock
	if o.Name != "" {
		base.Name = o.Name
	}
	if o.Quantity != 0 {
		base.Quantity = o.Quantity
	}
	if o.TS != 0 {
		base.TS = o.TS
	}
	if o.VS != 0 {
		base.VS = o.VS
	}
	if o.BMP != 0 {
		base.BMP = o.BMP
	}
	if o.CH4 != 0 {
		base.CH4 = o.CH4
	}
	if o.TKN != 0 {
		base.TKN = o.TKN
	}
	if o.TAN != 0 {
		base.TAN = o.TAN
	}
	if o.Distance != 0 {
		base.Distance = o.Distance
	}
	if o.CostPerTonne != 0 {
		base.CostPerTonne = o.CostPerTonne
	}
	return base, nil
}

// mergeParameters fills zero fields of p from the defaults.
func mergeParameters(p analysis.Parameters) analysis.Parameters {
	d := analysis.DefaultParameters()
	if p.Scale == 0 {
		p.Scale = d.Scale
	}
	if p.LoadingRate == 0 {
		p.LoadingRate = d.LoadingRate
	}
	if p.VSDestruction == 0 {
		p.VSDestruction = d.VSDestruction
	}
	if p.LifetimeYears == 0 {
		p.LifetimeYears = d.LifetimeYears
	}
	if p.DiscountRate == 0 {
		p.DiscountRate = d.DiscountRate
	}
	if p.DebtFraction == 0 {
		p.DebtFraction = d.DebtFraction
	}
	if p.DebtRate == 0 {
		p.DebtRate = d.DebtRate
	}
	if p.DebtTermYears == 0 {
		p.DebtTermYears = d.DebtTermYears
	}
	if p.TaxRate == 0 {
		p.TaxRate = d.TaxRate
	}
	if p.HeatUtilization == 0 {
		p.HeatUtilization = d.HeatUtilization
	}
	if p.BiogasPricePerGJ == 0 {
		p.BiogasPricePerGJ = d.BiogasPricePerGJ
	}
	if p.ElectricityPricePerMWh == 0 {
		p.ElectricityPricePerMWh = d.ElectricityPricePerMWh
	}
	if p.HeatPricePerGJ == 0 {
		p.HeatPricePerGJ = d.HeatPricePerGJ
	}
	return p
}

// mergeCosts fills zero fields of c from the default cost rates.
func mergeCosts(c costing.Params) costing.Params {
	d := costing.DefaultParams()
	if c.DigesterCostPerM3 == 0 {
		c.DigesterCostPerM3 = d.DigesterCostPerM3
	}
	if c.ReceptionFraction == 0 {
		c.ReceptionFraction = d.ReceptionFraction
	}
	if c.BiogasHandlingFraction == 0 {
		c.BiogasHandlingFraction = d.BiogasHandlingFraction
	}
	if c.DigestateHandlingFraction == 0 {
		c.DigestateHandlingFraction = d.DigestateHandlingFraction
	}
	if c.ControlSystemsFraction == 0 {
		c.ControlSystemsFraction = d.ControlSystemsFraction
	}
	if c.UpgradingCostPerM3h == 0 {
		c.UpgradingCostPerM3h = d.UpgradingCostPerM3h
	}
	if c.CHPCostPerKW == 0 {
		c.CHPCostPerKW = d.CHPCostPerKW
	}
	if c.EPCFraction == 0 {
		c.EPCFraction = d.EPCFraction
	}
	if c.ContingencyFraction == 0 {
		c.ContingencyFraction = d.ContingencyFraction
	}
	if c.MaintenanceFraction == 0 {
		c.MaintenanceFraction = d.MaintenanceFraction
	}
	if c.LaborSmall == 0 {
		c.LaborSmall = d.LaborSmall
	}
	if c.LaborMedium == 0 {
		c.LaborMedium = d.LaborMedium
	}
	if c.LaborLarge == 0 {
		c.LaborLarge = d.LaborLarge
	}
	if c.ConsumablesPerTonne == 0 {
		c.ConsumablesPerTonne = d.ConsumablesPerTonne
	}
	if c.InsuranceFraction == 0 {
		c.InsuranceFraction = d.InsuranceFraction
	}
	if c.UpgradingOpexFraction == 0 {
		c.UpgradingOpexFraction = d.UpgradingOpexFraction
	}
	if c.CHPOperatingHours == 0 {
		c.CHPOperatingHours = d.CHPOperatingHours
	}
	if c.CHPMaintenancePerKWh == 0 {
		c.CHPMaintenancePerKWh = d.CHPMaintenancePerKWh
	}
	if c.UtilitiesPerM3 == 0 {
		c.UtilitiesPerM3 = d.UtilitiesPerM3
	}
	return c
}

// warnEfficiencySum logs when the configured CHP efficiencies sum above 1.
// The sizing model applies them as given; the warning makes the unusual
// configuration visible.
func warnEfficiencySum(pathway sizing.Pathway, eff sizing.EfficiencyOptions) {
	if pathway != sizing.PathwayCHP {
		return
	}

	electrical := eff.Electrical
	if electrical == 0 {
		electrical = sizing.DefaultElectricalEfficiency
	}
	thermal := eff.Thermal
	if thermal == 0 {
		thermal = sizing.DefaultThermalEfficiency
	}

	if electrical+thermal > 1 {
		log := GetLogger()
		log.Warn().
			Str("component", "config").
			Float64("electrical", electrical).
			Float64("thermal", thermal).
			Msg("configured CHP efficiencies sum above 100%, results will overstate output")
	}
}
