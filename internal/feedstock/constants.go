package feedstock

const (
	// TransportRatePerTonneKm is the haulage rate in $ per tonne-km.
	TransportRatePerTonneKm = 0.10

	// percentToFraction converts catalog percentages to fractions.
	percentToFraction = 100.0
)
