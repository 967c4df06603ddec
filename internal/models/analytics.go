package models

// Summary is the dashboard home page aggregate from /analytics/summary.
type Summary struct {
	TotalPatients    Number `json:"total_patients"`
	TotalClaims      Number `json:"total_claims"`
	TotalVisits      Number `json:"total_visits"`
	TotalBilled      Number `json:"total_billed"`
	TotalCollected   Number `json:"total_collected"`
	TotalOutstanding Number `json:"total_outstanding"`
	CollectionRate   Number `json:"collection_rate"`
	AvgClaimAmount   Number `json:"avg_claim_amount"`
	TotalServiceCost Number `json:"total_service_cost"`
	GrossProfit      Number `json:"gross_profit"`
	ProfitMargin     Number `json:"profit_margin"`
	LastUpdated      Text   `json:"last_updated"`
}

type RevenueByClaim struct {
	PatientName        Text   `json:"Patient Name"`
	ClaimCode          Text   `json:"Claim Code"`
	CycleStart         Date   `json:"Cycle Start"`
	CycleEnd           Date   `json:"Cycle End"`
	Insurance          Text   `json:"Insurance"`
	TotalBilled        Number `json:"Total Amount Billed"`
	ExpectedPayment    Number `json:"Expected Payment"`
	PaymentReceived    Number `json:"Actual Payment Received"`
	RemainingBalance   Number `json:"Remaining Balance"`
	NetAdjustment      Number `json:"Net Adjustment"`
	PaymentRequestedAt Date   `json:"Payment Requested At"`
	PaymentReceivedAt  Date   `json:"Payment Received At"`
	DaysToPayment      Number `json:"Days to Payment"`
}

type ServiceCost struct {
	PatientName   Text   `json:"Patient Name"`
	CycleStart    Date   `json:"Cycle Start"`
	CycleEnd      Date   `json:"Cycle End"`
	ServiceType   Text   `json:"Service Type"`
	ProviderName  Text   `json:"Provider Name"`
	ServiceVisits Number `json:"Service Visits"`
	CostPerVisit  Number `json:"Cost per Visit"`
	TotalCost     Number `json:"Total Cost"`
	FileStatus    Text   `json:"File Status"`
	ClaimAmount   Number `json:"Claim Amount"`
}

type PatientProfitability struct {
	PatientName     Text   `json:"Patient Name"`
	CycleStart      Date   `json:"Cycle Start"`
	CycleEnd        Date   `json:"Cycle End"`
	RevenueBilled   Number `json:"Total Revenue Billed"`
	RevenueReceived Number `json:"Total Revenue Received"`
	TotalCost       Number `json:"Total Cost"`
	GrossProfit     Number `json:"Gross Profit"`
	GrossMargin     Number `json:"Gross Margin %"`
}

type ProviderPerformance struct {
	ProviderName      Text   `json:"Provider Name"`
	ServiceType       Text   `json:"Service Type"`
	TotalVisits       Number `json:"Total Visits"`
	TotalCost         Number `json:"Total Cost"`
	AvgCostPerVisit   Number `json:"Avg Cost per Visit"`
	PatientsServed    Number `json:"# of Patients Served"`
	AvgCostPerPatient Number `json:"Avg Cost per Patient"`
}

type InsurancePerformance struct {
	Insurance          Text   `json:"Insurance"`
	TotalClaims        Number `json:"Total Claims"`
	AvgDaysToPayment   Number `json:"Avg Days to Payment"`
	AvgExpectedPayment Number `json:"Avg Expected Payment"`
	AvgActualPayment   Number `json:"Avg Actual Payment"`
	AvgAdjustment      Number `json:"Avg Adjustment"`
	AvgCollected       Number `json:"Avg % Collected"`
}

type CodePerformance struct {
	ClaimCode          Text   `json:"Claim Code"`
	TotalClaims        Number `json:"Total Claims"`
	AvgBilledAmount    Number `json:"Avg Billed Amount"`
	AvgExpectedPayment Number `json:"Avg Expected Payment"`
	AvgActualPayment   Number `json:"Avg Actual Payment"`
	TotalReceived      Number `json:"Total Received"`
	AvgAdjustment      Number `json:"Avg Adjustment"`
	AvgCollected       Number `json:"Avg % Collected"`
}

type ServiceCostSummary struct {
	ServiceType     Text   `json:"Service Type"`
	TotalVisits     Number `json:"Total Visits"`
	TotalCost       Number `json:"Total Cost"`
	AvgCostPerVisit Number `json:"Avg Cost per Visit"`
	ShareOfCost     Number `json:"% of Total Cost"`
}

// ARClaim is a row of the extracted accounts receivable report.
type ARClaim struct {
	PatientName     Text   `json:"Patient Name"`
	ClaimCode       Text   `json:"Claim Code"`
	Status          Text   `json:"Stat"`
	PeriodStart     Date   `json:"Claim Period Start"`
	PeriodEnd       Date   `json:"Claim Period End"`
	TotalVisits     Number `json:"Total Visits"`
	TotalAmount     Number `json:"Total Amount"`
	ExpectedPayment Number `json:"Expected Payment"`
	PostedPayments  Number `json:"Posted Payments"`
	NetAdjustment   Number `json:"Net Adjust."`
	Balance         Number `json:"Balance"`
}

// Visit is a row of the extracted patient visit report.
type Visit struct {
	PatientName Text   `json:"Patient Name Clean"`
	ClaimNumber Text   `json:"Claim #"`
	Date        Date   `json:"Date"`
	Caregiver   Text   `json:"Caregiver"`
	Service     Text   `json:"Service"`
	Qty         Number `json:"Qty"`
	Amount      Number `json:"Amount"`
}

// ServiceRecord is one service line of a claim, as produced by the
// analytics pipeline before it is pivoted.
type ServiceRecord struct {
	ServiceCost
	ClaimCode       Text   `json:"Claim Code"`
	Insurance       Text   `json:"Insurance"`
	ExpectedPayment Number `json:"Expected Payment"`
	PostedPayments  Number `json:"Posted Payments"`
	Balance         Number `json:"Balance"`
}

// PatientDetail is the drill-down served by /analytics/patient/{name}.
type PatientDetail struct {
	Claims        []ARClaim              `json:"claims"`
	Visits        []Visit                `json:"visits"`
	Services      []ServiceRecord        `json:"services"`
	Profitability []PatientProfitability `json:"profitability"`
}
