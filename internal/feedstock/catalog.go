package feedstock

import "sort"

// defaultCatalog is the built-in feedstock library. Values are typical
// composition and yield figures for agro-industrial substrates; quantities
// are the reference project tonnages and serve as starting points that
// callers rescale per project.
//
//nolint:gochecknoglobals // Read-only catalog; Catalog() returns copies.
var defaultCatalog = map[string]Feedstock{
	"Meat": {
		Name: "Meat", Quantity: 2622,
		TS: 32.0, VS: 92.0, BMP: 628.4, CH4: 60.0,
		TKN: 2.75, TAN: 17.1,
		Distance: 50, CostPerTonne: 20,
	},
	"Digestate Sludge": {
		Name: "Digestate Sludge", Quantity: 1495,
		TS: 20.0, VS: 89.0, BMP: 280.9, CH4: 55.0,
		TKN: 1.56, TAN: 10.0,
		Distance: 10, CostPerTonne: 5,
	},
	"Blood Filter Cake": {
		Name: "Blood Filter Cake", Quantity: 3000,
		TS: 5.3, VS: 96.0, BMP: 660.0, CH4: 68.0,
		TKN: 13.61, TAN: 1.4,
		Distance: 60, CostPerTonne: 15,
	},
	"Chicken Carcasses": {
		Name: "Chicken Carcasses", Quantity: 1000,
		TS: 26.0, VS: 86.0, BMP: 402.5, CH4: 60.0,
		TKN: 5.00, TAN: 10.0,
		Distance: 70, CostPerTonne: 10,
	},
	"Chicken Litter": {
		Name: "Chicken Litter", Quantity: 10000,
		TS: 45.0, VS: 75.0, BMP: 500.0, CH4: 60.0,
		TKN: 4.86, TAN: 10.0,
		Distance: 80, CostPerTonne: 5,
	},
	"Grain Mix": {
		Name: "Grain Mix", Quantity: 2000,
		TS: 87.0, VS: 96.0, BMP: 729.8, CH4: 56.5,
		TKN: 2.99, TAN: 10.0,
		Distance: 100, CostPerTonne: 30,
	},
	"Crop Straw": {
		Name: "Crop Straw", Quantity: 12500,
		TS: 85.0, VS: 75.0, BMP: 350.0, CH4: 51.0,
		TKN: 0.29, TAN: 10.0,
		Distance: 120, CostPerTonne: 25,
	},
}

// FromCatalog returns the catalog entry for name.
// Returns ErrUnknownFeedstock when the name is not in the library.
func FromCatalog(name string) (Feedstock, error) {
	f, ok := defaultCatalog[name]
	if !ok {
		return Feedstock{}, ErrUnknownFeedstock
	}
	return f, nil
}

// Catalog returns all built-in feedstocks sorted by name.
func Catalog() []Feedstock {
	out := make([]Feedstock, 0, len(defaultCatalog))
	for _, f := range defaultCatalog {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CatalogNames returns the sorted names of the built-in library.
func CatalogNames() []string {
	names := make([]string, 0, len(defaultCatalog))
	for name := range defaultCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
