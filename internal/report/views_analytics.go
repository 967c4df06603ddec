package report

import (
	m "homehealth-dashboard/internal/models"
)

var Revenue = &Schema[m.RevenueByClaim]{
	Name:  "revenue",
	Title: "Revenue by Claim",
	Columns: []Column[m.RevenueByClaim]{
		TextColumn("patient", "Patient", func(r m.RevenueByClaim) m.Text { return r.PatientName }),
		TextColumn("claim_code", "Claim Code", func(r m.RevenueByClaim) m.Text { return r.ClaimCode }),
		DateColumn("cycle_start", "Cycle Start", func(r m.RevenueByClaim) m.Date { return r.CycleStart }),
		DateColumn("cycle_end", "Cycle End", func(r m.RevenueByClaim) m.Date { return r.CycleEnd }),
		TextColumn("insurance", "Insurance", func(r m.RevenueByClaim) m.Text { return r.Insurance }),
		NumberColumn("total_billed", "Billed", FormatCurrency, func(r m.RevenueByClaim) m.Number { return r.TotalBilled }),
		NumberColumn("expected_payment", "Expected", FormatCurrency, func(r m.RevenueByClaim) m.Number { return r.ExpectedPayment }),
		NumberColumn("payment_received", "Received", FormatCurrency, func(r m.RevenueByClaim) m.Number { return r.PaymentReceived }),
		NumberColumn("remaining_balance", "Balance", FormatCurrency, func(r m.RevenueByClaim) m.Number { return r.RemainingBalance }),
		NumberColumn("net_adjustment", "Adjustment", FormatCurrency, func(r m.RevenueByClaim) m.Number { return r.NetAdjustment }),
		DateColumn("payment_requested_at", "Requested", func(r m.RevenueByClaim) m.Date { return r.PaymentRequestedAt }),
		DateColumn("payment_received_at", "Paid", func(r m.RevenueByClaim) m.Date { return r.PaymentReceivedAt }),
		NumberColumn("days_to_payment", "Days to Pay", FormatCount, func(r m.RevenueByClaim) m.Number { return r.DaysToPayment }),
	},
	SearchFields: []string{"patient", "claim_code", "insurance"},
	RowLimit:     100,
	Dimensions: []Column[m.RevenueByClaim]{
		TextColumn("patient", "Patient", func(r m.RevenueByClaim) m.Text { return r.PatientName }),
		TextColumn("insurance", "Insurance", func(r m.RevenueByClaim) m.Text { return r.Insurance }),
		TextColumn("claim_code", "Claim Code", func(r m.RevenueByClaim) m.Text { return r.ClaimCode }),
		TextColumn("month", "Month", func(r m.RevenueByClaim) m.Text { return m.Text(r.CycleStart.Month()) }),
	},
	Measures:      []string{"total_billed", "expected_payment", "payment_received", "remaining_balance"},
	DistinctBy:    "patient",
	DistinctLabel: "Patients",
	DateBy:        "cycle_start",
	Cards: func(rows []m.RevenueByClaim) []Card {
		billed := Sum(rows, func(r m.RevenueByClaim) float64 { return r.TotalBilled.Float() })
		received := Sum(rows, func(r m.RevenueByClaim) float64 { return r.PaymentReceived.Float() })
		return []Card{
			{Label: "Total Billed", Value: billed, Format: FormatCurrency},
			{Label: "Total Received", Value: received, Format: FormatCurrency},
			{Label: "Outstanding", Value: Sum(rows, func(r m.RevenueByClaim) float64 { return r.RemainingBalance.Float() }), Format: FormatCurrency},
			{Label: "Collection Rate", Value: Rate(received, billed), Format: FormatPercent},
			{Label: "Avg Days to Payment", Value: AverageWhere(
				rows,
				func(r m.RevenueByClaim) float64 { return r.DaysToPayment.Float() },
				func(r m.RevenueByClaim) bool { return r.DaysToPayment > 0 },
			), Format: FormatPlain},
			{Label: "Claims", Value: Count(len(rows)), Format: FormatCount},
		}
	},
}

var ServiceCosts = &Schema[m.ServiceCost]{
	Name:  "service-costs",
	Title: "Service Costs",
	Columns: []Column[m.ServiceCost]{
		TextColumn("patient", "Patient", func(r m.ServiceCost) m.Text { return r.PatientName }),
		DateColumn("cycle_start", "Cycle Start", func(r m.ServiceCost) m.Date { return r.CycleStart }),
		DateColumn("cycle_end", "Cycle End", func(r m.ServiceCost) m.Date { return r.CycleEnd }),
		TextColumn("service_type", "Service", func(r m.ServiceCost) m.Text { return r.ServiceType }),
		TextColumn("provider", "Provider", func(r m.ServiceCost) m.Text { return r.ProviderName }),
		NumberColumn("service_visits", "Visits", FormatCount, func(r m.ServiceCost) m.Number { return r.ServiceVisits }),
		NumberColumn("cost_per_visit", "Cost/Visit", FormatCurrency, func(r m.ServiceCost) m.Number { return r.CostPerVisit }),
		NumberColumn("total_cost", "Total Cost", FormatCurrency, func(r m.ServiceCost) m.Number { return r.TotalCost }),
		TextColumn("file_status", "File Status", func(r m.ServiceCost) m.Text { return r.FileStatus }),
		NumberColumn("claim_amount", "Claim Amount", FormatCurrency, func(r m.ServiceCost) m.Number { return r.ClaimAmount }),
	},
	SearchFields: []string{"patient", "provider", "service_type"},
	RowLimit:     100,
	Dimensions: []Column[m.ServiceCost]{
		TextColumn("patient", "Patient", func(r m.ServiceCost) m.Text { return r.PatientName }),
		TextColumn("provider", "Provider", func(r m.ServiceCost) m.Text { return r.ProviderName }),
		TextColumn("service_type", "Service", func(r m.ServiceCost) m.Text { return r.ServiceType }),
		TextColumn("file_status", "File Status", func(r m.ServiceCost) m.Text { return r.FileStatus }),
		TextColumn("month", "Month", func(r m.ServiceCost) m.Text { return m.Text(r.CycleStart.Month()) }),
	},
	Measures:      []string{"service_visits", "total_cost"},
	DistinctBy:    "patient",
	DistinctLabel: "Patients",
	DateBy:        "cycle_start",
	Cards: func(rows []m.ServiceCost) []Card {
		cost := Sum(rows, func(r m.ServiceCost) float64 { return r.TotalCost.Float() })
		visits := Sum(rows, func(r m.ServiceCost) float64 { return r.ServiceVisits.Float() })
		return []Card{
			{Label: "Total Cost", Value: cost, Format: FormatCurrency},
			{Label: "Total Visits", Value: visits, Format: FormatCount},
			{Label: "Avg Cost per Visit", Value: Ratio(cost, visits), Format: FormatCurrency},
			{Label: "Patients", Value: Count(Distinct(rows, func(r m.ServiceCost) string { return r.PatientName.String() })), Format: FormatCount},
		}
	},
}

var PatientProfitability = &Schema[m.PatientProfitability]{
	Name:  "patient-profitability",
	Title: "Profitability by Patient",
	Columns: []Column[m.PatientProfitability]{
		TextColumn("patient", "Patient", func(r m.PatientProfitability) m.Text { return r.PatientName }),
		DateColumn("cycle_start", "Cycle Start", func(r m.PatientProfitability) m.Date { return r.CycleStart }),
		DateColumn("cycle_end", "Cycle End", func(r m.PatientProfitability) m.Date { return r.CycleEnd }),
		NumberColumn("revenue_billed", "Billed", FormatCurrency, func(r m.PatientProfitability) m.Number { return r.RevenueBilled }),
		NumberColumn("revenue_received", "Received", FormatCurrency, func(r m.PatientProfitability) m.Number { return r.RevenueReceived }),
		NumberColumn("total_cost", "Cost", FormatCurrency, func(r m.PatientProfitability) m.Number { return r.TotalCost }),
		NumberColumn("gross_profit", "Gross Profit", FormatCurrency, func(r m.PatientProfitability) m.Number { return r.GrossProfit }),
		NumberColumn("gross_margin", "Margin", FormatPercent, func(r m.PatientProfitability) m.Number { return r.GrossMargin }),
	},
	SearchFields: []string{"patient"},
	RowLimit:     100,
	Cards: func(rows []m.PatientProfitability) []Card {
		billed := Sum(rows, func(r m.PatientProfitability) float64 { return r.RevenueBilled.Float() })
		profit := Sum(rows, func(r m.PatientProfitability) float64 { return r.GrossProfit.Float() })
		return []Card{
			{Label: "Revenue Billed", Value: billed, Format: FormatCurrency},
			{Label: "Revenue Received", Value: Sum(rows, func(r m.PatientProfitability) float64 { return r.RevenueReceived.Float() }), Format: FormatCurrency},
			{Label: "Total Cost", Value: Sum(rows, func(r m.PatientProfitability) float64 { return r.TotalCost.Float() }), Format: FormatCurrency},
			{Label: "Gross Profit", Value: profit, Format: FormatCurrency},
			{Label: "Gross Margin", Value: Rate(profit, billed), Format: FormatPercent},
		}
	},
}

var Providers = &Schema[m.ProviderPerformance]{
	Name:  "providers",
	Title: "Provider Performance",
	Columns: []Column[m.ProviderPerformance]{
		TextColumn("provider", "Provider", func(r m.ProviderPerformance) m.Text { return r.ProviderName }),
		TextColumn("service_type", "Service", func(r m.ProviderPerformance) m.Text { return r.ServiceType }),
		NumberColumn("total_visits", "Visits", FormatCount, func(r m.ProviderPerformance) m.Number { return r.TotalVisits }),
		NumberColumn("total_cost", "Total Cost", FormatCurrency, func(r m.ProviderPerformance) m.Number { return r.TotalCost }),
		NumberColumn("avg_cost_per_visit", "Cost/Visit", FormatCurrency, func(r m.ProviderPerformance) m.Number { return r.AvgCostPerVisit }),
		NumberColumn("patients_served", "Patients", FormatCount, func(r m.ProviderPerformance) m.Number { return r.PatientsServed }),
		NumberColumn("avg_cost_per_patient", "Cost/Patient", FormatCurrency, func(r m.ProviderPerformance) m.Number { return r.AvgCostPerPatient }),
	},
	SearchFields: []string{"provider", "service_type"},
	DefaultSort:  SortState{Column: "total_cost", Desc: true},
	Cards: func(rows []m.ProviderPerformance) []Card {
		cost := Sum(rows, func(r m.ProviderPerformance) float64 { return r.TotalCost.Float() })
		visits := Sum(rows, func(r m.ProviderPerformance) float64 { return r.TotalVisits.Float() })
		return []Card{
			{Label: "Providers", Value: Count(Distinct(rows, func(r m.ProviderPerformance) string { return r.ProviderName.String() })), Format: FormatCount},
			{Label: "Total Visits", Value: visits, Format: FormatCount},
			{Label: "Total Cost", Value: cost, Format: FormatCurrency},
			{Label: "Avg Cost per Visit", Value: Ratio(cost, visits), Format: FormatCurrency},
		}
	},
}

var Insurance = &Schema[m.InsurancePerformance]{
	Name:  "insurance",
	Title: "Insurance Performance",
	Columns: []Column[m.InsurancePerformance]{
		TextColumn("insurance", "Insurance", func(r m.InsurancePerformance) m.Text { return r.Insurance }),
		NumberColumn("total_claims", "Claims", FormatCount, func(r m.InsurancePerformance) m.Number { return r.TotalClaims }),
		NumberColumn("avg_days_to_payment", "Avg Days", FormatPlain, func(r m.InsurancePerformance) m.Number { return r.AvgDaysToPayment }),
		NumberColumn("avg_expected_payment", "Avg Expected", FormatCurrency, func(r m.InsurancePerformance) m.Number { return r.AvgExpectedPayment }),
		NumberColumn("avg_actual_payment", "Avg Actual", FormatCurrency, func(r m.InsurancePerformance) m.Number { return r.AvgActualPayment }),
		NumberColumn("avg_adjustment", "Avg Adjustment", FormatCurrency, func(r m.InsurancePerformance) m.Number { return r.AvgAdjustment }),
		NumberColumn("avg_collected", "Collected", FormatPercent, func(r m.InsurancePerformance) m.Number { return r.AvgCollected }),
	},
	SearchFields: []string{"insurance"},
	DefaultSort:  SortState{Column: "total_claims", Desc: true},
	Cards: func(rows []m.InsurancePerformance) []Card {
		return []Card{
			{Label: "Payers", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Total Claims", Value: Sum(rows, func(r m.InsurancePerformance) float64 { return r.TotalClaims.Float() }), Format: FormatCount},
			{Label: "Avg Days to Payment", Value: Average(rows, func(r m.InsurancePerformance) float64 { return r.AvgDaysToPayment.Float() }), Format: FormatPlain},
			{Label: "Avg % Collected", Value: Average(rows, func(r m.InsurancePerformance) float64 { return r.AvgCollected.Float() }), Format: FormatPercent},
		}
	},
}

var Codes = &Schema[m.CodePerformance]{
	Name:  "codes",
	Title: "Claim Code Performance",
	Columns: []Column[m.CodePerformance]{
		TextColumn("claim_code", "Claim Code", func(r m.CodePerformance) m.Text { return r.ClaimCode }),
		NumberColumn("total_claims", "Claims", FormatCount, func(r m.CodePerformance) m.Number { return r.TotalClaims }),
		NumberColumn("avg_billed_amount", "Avg Billed", FormatCurrency, func(r m.CodePerformance) m.Number { return r.AvgBilledAmount }),
		NumberColumn("avg_expected_payment", "Avg Expected", FormatCurrency, func(r m.CodePerformance) m.Number { return r.AvgExpectedPayment }),
		NumberColumn("avg_actual_payment", "Avg Actual", FormatCurrency, func(r m.CodePerformance) m.Number { return r.AvgActualPayment }),
		NumberColumn("total_received", "Received", FormatCurrency, func(r m.CodePerformance) m.Number { return r.TotalReceived }),
		NumberColumn("avg_adjustment", "Avg Adjustment", FormatCurrency, func(r m.CodePerformance) m.Number { return r.AvgAdjustment }),
		NumberColumn("avg_collected", "Collected", FormatPercent, func(r m.CodePerformance) m.Number { return r.AvgCollected }),
	},
	SearchFields: []string{"claim_code"},
	DefaultSort:  SortState{Column: "total_received", Desc: true},
	Cards: func(rows []m.CodePerformance) []Card {
		return []Card{
			{Label: "Claim Codes", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Total Claims", Value: Sum(rows, func(r m.CodePerformance) float64 { return r.TotalClaims.Float() }), Format: FormatCount},
			{Label: "Total Received", Value: Sum(rows, func(r m.CodePerformance) float64 { return r.TotalReceived.Float() }), Format: FormatCurrency},
			{Label: "Avg % Collected", Value: Average(rows, func(r m.CodePerformance) float64 { return r.AvgCollected.Float() }), Format: FormatPercent},
		}
	},
}

var ServiceSummary = &Schema[m.ServiceCostSummary]{
	Name:  "service-summary",
	Title: "Service Cost Summary",
	Columns: []Column[m.ServiceCostSummary]{
		TextColumn("service_type", "Service", func(r m.ServiceCostSummary) m.Text { return r.ServiceType }),
		NumberColumn("total_visits", "Visits", FormatCount, func(r m.ServiceCostSummary) m.Number { return r.TotalVisits }),
		NumberColumn("total_cost", "Total Cost", FormatCurrency, func(r m.ServiceCostSummary) m.Number { return r.TotalCost }),
		NumberColumn("avg_cost_per_visit", "Cost/Visit", FormatCurrency, func(r m.ServiceCostSummary) m.Number { return r.AvgCostPerVisit }),
		NumberColumn("share_of_cost", "Share", FormatPercent, func(r m.ServiceCostSummary) m.Number { return r.ShareOfCost }),
	},
	SearchFields: []string{"service_type"},
	DefaultSort:  SortState{Column: "total_cost", Desc: true},
	Cards: func(rows []m.ServiceCostSummary) []Card {
		cost := Sum(rows, func(r m.ServiceCostSummary) float64 { return r.TotalCost.Float() })
		visits := Sum(rows, func(r m.ServiceCostSummary) float64 { return r.TotalVisits.Float() })
		return []Card{
			{Label: "Service Types", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Total Visits", Value: visits, Format: FormatCount},
			{Label: "Total Cost", Value: cost, Format: FormatCurrency},
			{Label: "Avg Cost per Visit", Value: Ratio(cost, visits), Format: FormatCurrency},
		}
	},
}
