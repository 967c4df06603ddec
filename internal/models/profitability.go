package models

type ProfitabilityOverall struct {
	TotalRevenue     Number `json:"total_revenue"`
	TotalCosts       Number `json:"total_costs"`
	MatchedCosts     Number `json:"matched_costs"`
	UnmatchedCosts   Number `json:"unmatched_costs"`
	OverheadCosts    Number `json:"overhead_costs"`
	GrossProfit      Number `json:"gross_profit"`
	ProfitMargin     Number `json:"profit_margin"`
	TotalClaims      Number `json:"total_claims"`
	UniquePatients   Number `json:"unique_patients"`
	UniquePhysicians Number `json:"unique_physicians"`
}

type PhysicianProfit struct {
	Physician       Text   `json:"physician"`
	Revenue         Number `json:"revenue"`
	Billed          Number `json:"billed"`
	DirectCosts     Number `json:"direct_costs"`
	Profit          Number `json:"profit"`
	Margin          Number `json:"margin"`
	Patients        Number `json:"patients"`
	Claims          Number `json:"claims"`
	HasMatchedCosts bool   `json:"has_matched_costs"`
}

// UnmatchedCost is an employee cost whose patient name could not be
// reconciled with any claim.
type UnmatchedCost struct {
	PatientName Text   `json:"patient_name"`
	Employee    Text   `json:"employee"`
	Amount      Number `json:"amount"`
	Date        Date   `json:"date"`
}

// OverheadCost is the total of cost records with no patient attribution
// for one employee.
type OverheadCost struct {
	Employee Text   `json:"employee"`
	Amount   Number `json:"amount"`
}

type ProfitabilityAnalysis struct {
	Overall           ProfitabilityOverall `json:"overall"`
	ByPhysician       []PhysicianProfit    `json:"by_physician"`
	UnmatchedPatients []UnmatchedCost      `json:"unmatched_patients"`
	Overhead          []OverheadCost       `json:"overhead"`
	GeneratedAt       Text                 `json:"generated_at"`
}
