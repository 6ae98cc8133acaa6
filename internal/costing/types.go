// Package costing builds capital and operating cost breakdowns for an
// anaerobic digestion plant from its digester size and product pathway.
//
// Breakdowns are typed structs with an explicit pathway-specific field; the
// OPEX model reads the CAPEX pathway line directly instead of looking it up
// by name, so the two models cannot drift apart on a key string.
package costing

// LineItem is one named entry of a cost breakdown, in rendering order.
type LineItem struct {
	// Label is the display name of the cost component.
	Label string `json:"label"`

	// Amount is the cost in $ (annual $ for OPEX lines).
	Amount float64 `json:"amount"`
}

// PathwayCost is the pathway-specific line of a breakdown: the biogas
// upgrading system or the CHP system, mutually exclusive by pathway.
type PathwayCost struct {
	// Label names the line ("Biogas Upgrading System", "CHP System",
	// "Biogas Upgrading O&M", or "CHP Maintenance").
	Label string `json:"label"`

	// Amount is the cost in $.
	Amount float64 `json:"amount"`
}

// CapexBreakdown is the capital cost breakdown.
// Total always equals the sum of the other entries.
type CapexBreakdown struct {
	// Digester is the digester system cost.
	Digester float64 `json:"digester"`

	// Reception is the reception and pre-treatment systems cost.
	Reception float64 `json:"reception"`

	// BiogasHandling is the biogas handling systems cost.
	BiogasHandling float64 `json:"biogas_handling"`

	// DigestateHandling is the digestate handling systems cost.
	DigestateHandling float64 `json:"digestate_handling"`

	// ControlSystems is the plant control systems cost.
	ControlSystems float64 `json:"control_systems"`

	// Pathway is the pathway-specific equipment line.
	Pathway PathwayCost `json:"pathway"`

	// EPC is the engineering, procurement, and construction cost.
	EPC float64 `json:"epc"`

	// Contingency is the contingency allowance.
	Contingency float64 `json:"contingency"`

	// Total is the full capital cost.
	Total float64 `json:"total"`
}

// LineItems returns the breakdown entries in rendering order, excluding the
// total.
func (b CapexBreakdown) LineItems() []LineItem {
	return []LineItem{
		{Label: "Digester System", Amount: b.Digester},
		{Label: "Reception and Pre-treatment", Amount: b.Reception},
		{Label: "Biogas Handling", Amount: b.BiogasHandling},
		{Label: "Digestate Handling", Amount: b.DigestateHandling},
		{Label: "Control Systems", Amount: b.ControlSystems},
		{Label: b.Pathway.Label, Amount: b.Pathway.Amount},
		{Label: "EPC Costs", Amount: b.EPC},
		{Label: "Contingency", Amount: b.Contingency},
	}
}

// OpexBreakdown is the annual operating cost breakdown.
// Total always equals the sum of the other entries.
type OpexBreakdown struct {
	// Maintenance is the annual plant maintenance cost.
	Maintenance float64 `json:"maintenance"`

	// Labor is the annual staffing cost, stepped by plant size.
	Labor float64 `json:"labor"`

	// Consumables is the annual chemicals and water cost.
	Consumables float64 `json:"consumables"`

	// Insurance is the annual insurance premium.
	Insurance float64 `json:"insurance"`

	// Pathway is the pathway-specific operating line.
	Pathway PathwayCost `json:"pathway"`

	// Utilities is the annual electricity and heat cost.
	Utilities float64 `json:"utilities"`

	// Total is the full annual operating cost.
	Total float64 `json:"total"`
}

// LineItems returns the breakdown entries in rendering order, excluding the
// total.
func (b OpexBreakdown) LineItems() []LineItem {
	return []LineItem{
		{Label: "Maintenance", Amount: b.Maintenance},
		{Label: "Labor", Amount: b.Labor},
		{Label: "Consumables", Amount: b.Consumables},
		{Label: "Insurance", Amount: b.Insurance},
		{Label: b.Pathway.Label, Amount: b.Pathway.Amount},
		{Label: "Utilities", Amount: b.Utilities},
	}
}
