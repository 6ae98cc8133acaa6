// Package sizing derives process equipment parameters for an anaerobic
// digestion plant: digester volume from the volatile-solids load, energy
// outputs for the selected product pathway, parasitic load, digestate
// production, and CHP generator unit selection.
package sizing

import (
	"fmt"
	"strings"
)

// Pathway selects the product pathway for the plant's methane output.
type Pathway int

const (
	// PathwayBiogas upgrades raw biogas to pipeline-grade biomethane.
	PathwayBiogas Pathway = iota

	// PathwayCHP burns the biogas in combined-heat-and-power engines.
	PathwayCHP
)

// String returns the canonical lowercase name of the pathway.
func (p Pathway) String() string {
	switch p {
	case PathwayBiogas:
		return "biogas"
	case PathwayCHP:
		return "chp"
	default:
		return fmt.Sprintf("Pathway(%d)", int(p))
	}
}

// ParsePathway converts a user-supplied pathway string into a Pathway.
// Parsing happens once at the boundary; inside the engine an invalid
// pathway is unrepresentable.
func ParsePathway(s string) (Pathway, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "biogas":
		return PathwayBiogas, nil
	case "chp":
		return PathwayCHP, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected biogas or chp)", ErrInvalidPathway, s)
	}
}
