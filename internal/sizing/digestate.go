package sizing

import (
	"context"

	"github.com/greenbock/adplan/internal/logging"
)

// DigestateSplit holds the annual digestate production after separation.
type DigestateSplit struct {
	// TotalTonnes is the total digestate mass in tonnes per year.
	TotalTonnes float64 `json:"total_digestate_tonnes"`

	// SolidTonnes is the solid fraction after separation.
	SolidTonnes float64 `json:"solid_digestate_tonnes"`

	// LiquidTonnes is the liquid fraction after separation.
	LiquidTonnes float64 `json:"liquid_digestate_tonnes"`
}

// DigestateProduction estimates digestate output as feedstock mass minus the
// destroyed volatile solids, split into fixed solid and liquid fractions.
//
// An adversarial combination of inputs (VS destroyed exceeding total
// feedstock mass) would produce a negative digestate mass; the result is
// clamped to zero and the raw value logged, since a negative mass is
// physically meaningless and would poison the solid/liquid split downstream.
func DigestateProduction(ctx context.Context, totalFeedstockTonnes, totalVSTonnes, vsDestruction float64) DigestateSplit {
	vsDestroyed := totalVSTonnes * vsDestruction
	digestate := totalFeedstockTonnes - vsDestroyed

	if digestate < 0 {
		log := logging.FromContext(ctx)
		log.Warn().
			Str("component", "sizing").
			Float64("raw_digestate_tonnes", digestate).
			Float64("feedstock_tonnes", totalFeedstockTonnes).
			Float64("vs_destroyed_tonnes", vsDestroyed).
			Msg("digestate mass came out negative, clamping to zero")
		digestate = 0
	}

	return DigestateSplit{
		TotalTonnes:  digestate,
		SolidTonnes:  digestate * SolidDigestateFraction,
		LiquidTonnes: digestate * LiquidDigestateFraction,
	}
}
