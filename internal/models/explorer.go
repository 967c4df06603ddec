package models

// ExplorerClaim is a row of the raw claim list.
type ExplorerClaim struct {
	PatientName      Text   `json:"Patient Name"`
	PrimaryPhysician Text   `json:"Primary Physician"`
	PrimaryInsurance Text   `json:"Primary Insurance"`
	ClaimCode        Text   `json:"Claim Code"`
	ClaimType        Text   `json:"Claim Type"`
	Status           Text   `json:"Status"`
	SOCDate          Date   `json:"SOC Date"`
	ClaimStart       Date   `json:"Claim Start"`
	ClaimEnd         Date   `json:"Claim End"`
	RAPSentDate      Date   `json:"RAP Sent Date"`
	FinalSentDate    Date   `json:"Final Sent Date"`
	ClaimAmount      Number `json:"Claim Amount"`
	PaidAmount       Number `json:"Paid Amount"`
	AdjustedAmount   Number `json:"Adjusted Amount"`
	Balance          Number `json:"Balance"`
}

// ExplorerCost is a row of the employee cost sheet. the sheet calls the
// employee column "Physician".
type ExplorerCost struct {
	PatientName Text   `json:"Patient_Name"`
	Employee    Text   `json:"Physician"`
	Date        Date   `json:"Date"`
	DatePaid    Date   `json:"Date_Paid"`
	TotalAmount Number `json:"Total_Amount"`
}

// Dataset is the envelope the explorer endpoints wrap raw rows in.
type Dataset[T any] struct {
	Data         []T      `json:"data"`
	Columns      []string `json:"columns"`
	TotalRecords int      `json:"total_records"`
}

type MonthRow struct {
	Month    Text   `json:"month"`
	Billed   Number `json:"billed"`
	Paid     Number `json:"paid"`
	Patients Number `json:"patients"`
	Claims   Number `json:"claims"`
	Costs    Number `json:"costs"`
	Profit   Number `json:"profit"`
}

type DateRange struct {
	ClaimsStart Text `json:"claims_start"`
	ClaimsEnd   Text `json:"claims_end"`
	CostsStart  Text `json:"costs_start"`
	CostsEnd    Text `json:"costs_end"`
}

type MonthlyTotals struct {
	TotalBilled Number    `json:"total_billed"`
	TotalPaid   Number    `json:"total_paid"`
	TotalCosts  Number    `json:"total_costs"`
	DateRange   DateRange `json:"date_range"`
}

type MonthlySummary struct {
	Data    []MonthRow    `json:"data"`
	Summary MonthlyTotals `json:"summary"`
}
