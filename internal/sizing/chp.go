package sizing

import "sort"

// CHPConfiguration describes a selected set of CHP generator units.
type CHPConfiguration struct {
	// UnitsKW lists the selected generator sizes in kW in selection order.
	UnitsKW []float64 `json:"chp_units_kw"`

	// UnitCount is the number of selected generators.
	UnitCount int `json:"number_of_units"`

	// InstalledCapacityKW is the summed nameplate capacity.
	InstalledCapacityKW float64 `json:"total_installed_capacity_kw"`

	// Utilization is target capacity over installed capacity. It can sit
	// above or below 1 depending on how the discrete sizes round, and is
	// zero when nothing is installed.
	Utilization float64 `json:"capacity_utilization"`
}

// UnitSizer selects a combination of CHP generator units to cover a target
// electrical capacity. It is an interface so the greedy cover below can be
// swapped for an exact algorithm without touching callers.
type UnitSizer interface {
	SizeUnits(targetPowerKW float64) CHPConfiguration
}

// GreedySizer covers the target with the largest catalog units first.
//
// This is a documented heuristic, not an optimizer: it neither minimizes the
// unit count nor the oversize. A unit is added while the remaining target can
// keep it at or above MinUnitLoadFraction of nameplate, and one final smaller
// unit is appended when the residual still exceeds
// ResidualCapacityThresholdKW.
type GreedySizer struct{}

// SizeUnits implements UnitSizer.
func (GreedySizer) SizeUnits(targetPowerKW float64) CHPConfiguration {
	sizes := make([]float64, len(chpUnitCatalogKW))
	copy(sizes, chpUnitCatalogKW)
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	var units []float64
	remaining := targetPowerKW

	for _, size := range sizes {
		for remaining >= size*MinUnitLoadFraction {
			units = append(units, size)
			remaining -= size
		}
	}

	if remaining > ResidualCapacityThresholdKW {
		sort.Float64s(sizes)
		for _, size := range sizes {
			if size >= remaining {
				units = append(units, size)
				remaining = 0
				break
			}
		}
	}

	var installed float64
	for _, u := range units {
		installed += u
	}

	var utilization float64
	if installed > 0 {
		utilization = targetPowerKW / installed
	}

	return CHPConfiguration{
		UnitsKW:             units,
		UnitCount:           len(units),
		InstalledCapacityKW: installed,
		Utilization:         utilization,
	}
}

// SizeCHPUnits selects CHP units with the default greedy sizer.
func SizeCHPUnits(targetPowerKW float64) CHPConfiguration {
	return GreedySizer{}.SizeUnits(targetPowerKW)
}
