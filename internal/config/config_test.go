package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbock/adplan/internal/feedstock"
	"github.com/greenbock/adplan/internal/sizing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "table", cfg.Output.DefaultFormat)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "adplan.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "table", cfg.Output.DefaultFormat, "untouched section keeps defaults")
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "adplan.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging: [broken"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adplan.yaml")

	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.Error(t, WriteDefault(path), "refuses to clobber an existing file")
}

const projectYAML = `
version: "1.0.0"
name: demo plant
pathway: chp
feedstocks:
  - catalog: Meat
  - catalog: Crop Straw
    quantity: 5000
    distance: 30
  - name: Brewery Sludge
    quantity: 800
    ts: 12
    vs: 85
    bmp: 310
    ch4: 58
    distance: 15
    cost_per_tonne: 8
params:
  lifetime_years: 25
  discount_rate: 0.06
costs:
  digester_cost_per_m3: 550
`

func TestLoadProject(t *testing.T) {
	write := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "project.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0600))
		return path
	}

	t.Run("full project resolves", func(t *testing.T) {
		project, err := LoadProject(write(t, projectYAML))
		require.NoError(t, err)

		assert.Equal(t, "demo plant", project.Name)
		assert.Equal(t, sizing.PathwayCHP, project.Pathway)
		require.Len(t, project.Feedstocks, 3)

		// Pure catalog reference.
		meat := project.Feedstocks[0]
		assert.Equal(t, "Meat", meat.Name)
		assert.InDelta(t, 628.4, meat.BMP, 1e-9)

		// Catalog reference with overrides: overridden fields change, the
		// rest keep catalog values.
		straw := project.Feedstocks[1]
		assert.Equal(t, "Crop Straw", straw.Name)
		assert.InDelta(t, 5000.0, straw.Quantity, 1e-9)
		assert.InDelta(t, 30.0, straw.Distance, 1e-9)
		assert.InDelta(t, 350.0, straw.BMP, 1e-9)

		// Fully inline entry.
		sludge := project.Feedstocks[2]
		assert.Equal(t, "Brewery Sludge", sludge.Name)
		assert.InDelta(t, 310.0, sludge.BMP, 1e-9)

		// Explicit params stick, unset ones fall back to defaults.
		assert.Equal(t, 25, project.Params.LifetimeYears)
		assert.InDelta(t, 0.06, project.Params.DiscountRate, 1e-9)
		assert.InDelta(t, 0.70, project.Params.DebtFraction, 1e-9)

		assert.InDelta(t, 550.0, project.Costs.DigesterCostPerM3, 1e-9)
		assert.InDelta(t, 1500.0, project.Costs.CHPCostPerKW, 1e-9)
	})

	t.Run("overcommitted chp efficiencies resolve with a warning", func(t *testing.T) {
		body := `
pathway: chp
feedstocks:
  - catalog: Meat
efficiency:
  electrical: 0.6
  thermal: 0.6
`
		project, err := LoadProject(write(t, body))
		require.NoError(t, err, "efficiency sums above 1 warn, never fail")
		assert.InDelta(t, 0.6, project.Efficiency.Electrical, 1e-9)
		assert.InDelta(t, 0.6, project.Efficiency.Thermal, 1e-9)
	})

	t.Run("unknown catalog reference fails", func(t *testing.T) {
		body := "pathway: chp\nfeedstocks:\n  - catalog: Uranium\n"
		_, err := LoadProject(write(t, body))
		assert.ErrorIs(t, err, feedstock.ErrUnknownFeedstock)
	})

	t.Run("invalid pathway fails", func(t *testing.T) {
		body := "pathway: fusion\nfeedstocks:\n  - catalog: Meat\n"
		_, err := LoadProject(write(t, body))
		assert.ErrorIs(t, err, sizing.ErrInvalidPathway)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadProject(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestCheckSchemaVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "empty accepted as current", version: ""},
		{name: "current major", version: "1.0.0"},
		{name: "current major with minor", version: "1.4.2"},
		{name: "future major rejected", version: "2.0.0", wantErr: true},
		{name: "garbage rejected", version: "not-a-version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSchemaVersion(tt.version)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
