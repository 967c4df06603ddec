package report

import (
	"fmt"
	"strings"

	m "homehealth-dashboard/internal/models"
)

var Physicians = &Schema[m.PhysicianProfit]{
	Name:  "physicians",
	Title: "Profitability by Physician",
	Columns: []Column[m.PhysicianProfit]{
		TextColumn("physician", "Physician", func(r m.PhysicianProfit) m.Text { return r.Physician }),
		NumberColumn("revenue", "Revenue", FormatCurrency, func(r m.PhysicianProfit) m.Number { return r.Revenue }),
		NumberColumn("billed", "Billed", FormatCurrency, func(r m.PhysicianProfit) m.Number { return r.Billed }),
		NumberColumn("direct_costs", "Direct Costs", FormatCurrency, func(r m.PhysicianProfit) m.Number { return r.DirectCosts }),
		NumberColumn("profit", "Profit", FormatCurrency, func(r m.PhysicianProfit) m.Number { return r.Profit }),
		NumberColumn("margin", "Margin", FormatPercent, func(r m.PhysicianProfit) m.Number { return r.Margin }),
		NumberColumn("patients", "Patients", FormatCount, func(r m.PhysicianProfit) m.Number { return r.Patients }),
		NumberColumn("claims", "Claims", FormatCount, func(r m.PhysicianProfit) m.Number { return r.Claims }),
		{
			ID:    "has_matched_costs",
			Label: "Costs Matched",
			Kind:  KindText,
			Text: func(r m.PhysicianProfit) string {
				if r.HasMatchedCosts {
					return "yes"
				}
				return "no"
			},
		},
	},
	SearchFields: []string{"physician"},
	DefaultSort:  SortState{Column: "revenue", Desc: true},
	Cards: func(rows []m.PhysicianProfit) []Card {
		revenue := Sum(rows, func(r m.PhysicianProfit) float64 { return r.Revenue.Float() })
		profit := Sum(rows, func(r m.PhysicianProfit) float64 { return r.Profit.Float() })
		return []Card{
			{Label: "Physicians", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Revenue", Value: revenue, Format: FormatCurrency},
			{Label: "Direct Costs", Value: Sum(rows, func(r m.PhysicianProfit) float64 { return r.DirectCosts.Float() }), Format: FormatCurrency},
			{Label: "Profit", Value: profit, Format: FormatCurrency},
			{Label: "Margin", Value: Rate(profit, revenue), Format: FormatPercent},
		}
	},
}

var Unmatched = &Schema[m.UnmatchedCost]{
	Name:  "unmatched",
	Title: "Unmatched Patient Costs",
	Columns: []Column[m.UnmatchedCost]{
		TextColumn("patient", "Patient", func(r m.UnmatchedCost) m.Text { return r.PatientName }),
		TextColumn("employee", "Employee", func(r m.UnmatchedCost) m.Text { return r.Employee }),
		NumberColumn("amount", "Amount", FormatCurrency, func(r m.UnmatchedCost) m.Number { return r.Amount }),
		DateColumn("date", "Date", func(r m.UnmatchedCost) m.Date { return r.Date }),
	},
	SearchFields: []string{"patient", "employee"},
	DefaultSort:  SortState{Column: "amount", Desc: true},
	RowLimit:     100,
	Cards: func(rows []m.UnmatchedCost) []Card {
		return []Card{
			{Label: "Records", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Total Amount", Value: Sum(rows, func(r m.UnmatchedCost) float64 { return r.Amount.Float() }), Format: FormatCurrency},
			{Label: "Patients", Value: Count(Distinct(rows, func(r m.UnmatchedCost) string { return r.PatientName.String() })), Format: FormatCount},
			{Label: "Employees", Value: Count(Distinct(rows, func(r m.UnmatchedCost) string { return r.Employee.String() })), Format: FormatCount},
		}
	},
}

var Overhead = &Schema[m.OverheadCost]{
	Name:  "overhead",
	Title: "Overhead Costs",
	Columns: []Column[m.OverheadCost]{
		TextColumn("employee", "Employee", func(r m.OverheadCost) m.Text { return r.Employee }),
		NumberColumn("amount", "Amount", FormatCurrency, func(r m.OverheadCost) m.Number { return r.Amount }),
	},
	SearchFields: []string{"employee"},
	DefaultSort:  SortState{Column: "amount", Desc: true},
	Cards: func(rows []m.OverheadCost) []Card {
		return []Card{
			{Label: "Employees", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Total Overhead", Value: Sum(rows, func(r m.OverheadCost) float64 { return r.Amount.Float() }), Format: FormatCurrency},
		}
	},
}

var Claims = &Schema[m.ExplorerClaim]{
	Name:  "claims",
	Title: "Claims",
	Columns: []Column[m.ExplorerClaim]{
		TextColumn("patient", "Patient", func(r m.ExplorerClaim) m.Text { return r.PatientName }),
		TextColumn("physician", "Physician", func(r m.ExplorerClaim) m.Text { return r.PrimaryPhysician }),
		TextColumn("insurance", "Insurance", func(r m.ExplorerClaim) m.Text { return r.PrimaryInsurance }),
		TextColumn("claim_code", "Claim Code", func(r m.ExplorerClaim) m.Text { return r.ClaimCode }),
		TextColumn("claim_type", "Type", func(r m.ExplorerClaim) m.Text { return r.ClaimType }),
		TextColumn("status", "Status", func(r m.ExplorerClaim) m.Text { return r.Status }),
		DateColumn("soc_date", "SOC", func(r m.ExplorerClaim) m.Date { return r.SOCDate }),
		DateColumn("claim_start", "Start", func(r m.ExplorerClaim) m.Date { return r.ClaimStart }),
		DateColumn("claim_end", "End", func(r m.ExplorerClaim) m.Date { return r.ClaimEnd }),
		DateColumn("final_sent_date", "Final Sent", func(r m.ExplorerClaim) m.Date { return r.FinalSentDate }),
		NumberColumn("claim_amount", "Claim Amount", FormatCurrency, func(r m.ExplorerClaim) m.Number { return r.ClaimAmount }),
		NumberColumn("paid_amount", "Paid", FormatCurrency, func(r m.ExplorerClaim) m.Number { return r.PaidAmount }),
		NumberColumn("adjusted_amount", "Adjusted", FormatCurrency, func(r m.ExplorerClaim) m.Number { return r.AdjustedAmount }),
		NumberColumn("balance", "Balance", FormatCurrency, func(r m.ExplorerClaim) m.Number { return r.Balance }),
	},
	SearchFields: []string{"patient", "physician", "insurance", "claim_code"},
	RowLimit:     100,
	Dimensions: []Column[m.ExplorerClaim]{
		TextColumn("patient", "Patient", func(r m.ExplorerClaim) m.Text { return r.PatientName }),
		TextColumn("physician", "Physician", func(r m.ExplorerClaim) m.Text { return r.PrimaryPhysician }),
		TextColumn("insurance", "Insurance", func(r m.ExplorerClaim) m.Text { return r.PrimaryInsurance }),
		TextColumn("status", "Status", func(r m.ExplorerClaim) m.Text { return r.Status }),
		TextColumn("claim_type", "Type", func(r m.ExplorerClaim) m.Text { return r.ClaimType }),
		TextColumn("month", "Month", func(r m.ExplorerClaim) m.Text { return m.Text(r.ClaimStart.Month()) }),
	},
	Measures:      []string{"claim_amount", "paid_amount", "adjusted_amount", "balance"},
	DistinctBy:    "patient",
	DistinctLabel: "Patients",
	DateBy:        "claim_start",
	Cards: func(rows []m.ExplorerClaim) []Card {
		billed := Sum(rows, func(r m.ExplorerClaim) float64 { return r.ClaimAmount.Float() })
		paid := Sum(rows, func(r m.ExplorerClaim) float64 { return r.PaidAmount.Float() })
		return []Card{
			{Label: "Claims", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Total Billed", Value: billed, Format: FormatCurrency},
			{Label: "Total Paid", Value: paid, Format: FormatCurrency},
			{Label: "Balance", Value: Sum(rows, func(r m.ExplorerClaim) float64 { return r.Balance.Float() }), Format: FormatCurrency},
			{Label: "Collection Rate", Value: Rate(paid, billed), Format: FormatPercent},
			{Label: "Patients", Value: Count(Distinct(rows, func(r m.ExplorerClaim) string { return r.PatientName.String() })), Format: FormatCount},
		}
	},
}

var Costs = &Schema[m.ExplorerCost]{
	Name:  "costs",
	Title: "Employee Costs",
	Columns: []Column[m.ExplorerCost]{
		TextColumn("patient", "Patient", func(r m.ExplorerCost) m.Text { return r.PatientName }),
		TextColumn("employee", "Employee", func(r m.ExplorerCost) m.Text { return r.Employee }),
		DateColumn("date", "Date", func(r m.ExplorerCost) m.Date { return r.Date }),
		DateColumn("date_paid", "Paid", func(r m.ExplorerCost) m.Date { return r.DatePaid }),
		NumberColumn("total_amount", "Amount", FormatCurrency, func(r m.ExplorerCost) m.Number { return r.TotalAmount }),
	},
	SearchFields: []string{"patient", "employee"},
	RowLimit:     100,
	Dimensions: []Column[m.ExplorerCost]{
		TextColumn("patient", "Patient", func(r m.ExplorerCost) m.Text { return r.PatientName }),
		TextColumn("employee", "Employee", func(r m.ExplorerCost) m.Text { return r.Employee }),
		TextColumn("month", "Month", func(r m.ExplorerCost) m.Text { return m.Text(r.Date.Month()) }),
	},
	Measures:      []string{"total_amount"},
	DistinctBy:    "patient",
	DistinctLabel: "Patients",
	DateBy:        "date",
	Cards: func(rows []m.ExplorerCost) []Card {
		return []Card{
			{Label: "Records", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Total Amount", Value: Sum(rows, func(r m.ExplorerCost) float64 { return r.TotalAmount.Float() }), Format: FormatCurrency},
			{Label: "Patients", Value: Count(Distinct(rows, func(r m.ExplorerCost) string { return r.PatientName.String() })), Format: FormatCount},
			{Label: "Employees", Value: Count(Distinct(rows, func(r m.ExplorerCost) string { return r.Employee.String() })), Format: FormatCount},
		}
	},
}

var Monthly = &Schema[m.MonthRow]{
	Name:  "monthly",
	Title: "Monthly Summary",
	Columns: []Column[m.MonthRow]{
		TextColumn("month", "Month", func(r m.MonthRow) m.Text { return r.Month }),
		NumberColumn("billed", "Billed", FormatCurrency, func(r m.MonthRow) m.Number { return r.Billed }),
		NumberColumn("paid", "Paid", FormatCurrency, func(r m.MonthRow) m.Number { return r.Paid }),
		NumberColumn("costs", "Costs", FormatCurrency, func(r m.MonthRow) m.Number { return r.Costs }),
		NumberColumn("profit", "Profit", FormatCurrency, func(r m.MonthRow) m.Number { return r.Profit }),
		NumberColumn("patients", "Patients", FormatCount, func(r m.MonthRow) m.Number { return r.Patients }),
		NumberColumn("claims", "Claims", FormatCount, func(r m.MonthRow) m.Number { return r.Claims }),
	},
	SearchFields: []string{"month"},
	DefaultSort:  SortState{Column: "month"},
	Cards: func(rows []m.MonthRow) []Card {
		paid := Sum(rows, func(r m.MonthRow) float64 { return r.Paid.Float() })
		profit := Sum(rows, func(r m.MonthRow) float64 { return r.Profit.Float() })
		return []Card{
			{Label: "Months", Value: Count(len(rows)), Format: FormatCount},
			{Label: "Billed", Value: Sum(rows, func(r m.MonthRow) float64 { return r.Billed.Float() }), Format: FormatCurrency},
			{Label: "Paid", Value: paid, Format: FormatCurrency},
			{Label: "Costs", Value: Sum(rows, func(r m.MonthRow) float64 { return r.Costs.Float() }), Format: FormatCurrency},
			{Label: "Profit", Value: profit, Format: FormatCurrency},
			{Label: "Margin", Value: Rate(profit, paid), Format: FormatPercent},
		}
	},
}

// OverallCards summarises /profitability/analysis.
func OverallCards(o m.ProfitabilityOverall) []Card {
	return []Card{
		{Label: "Total Revenue", Value: Decimal(o.TotalRevenue), Format: FormatCurrency},
		{Label: "Total Costs", Value: Decimal(o.TotalCosts), Format: FormatCurrency},
		{Label: "Matched Costs", Value: Decimal(o.MatchedCosts), Format: FormatCurrency},
		{Label: "Unmatched Costs", Value: Decimal(o.UnmatchedCosts), Format: FormatCurrency},
		{Label: "Overhead Costs", Value: Decimal(o.OverheadCosts), Format: FormatCurrency},
		{Label: "Gross Profit", Value: Decimal(o.GrossProfit), Format: FormatCurrency},
		{Label: "Profit Margin", Value: Decimal(o.ProfitMargin), Format: FormatPercent},
		{Label: "Claims", Value: Decimal(o.TotalClaims), Format: FormatCount},
		{Label: "Patients", Value: Decimal(o.UniquePatients), Format: FormatCount},
		{Label: "Physicians", Value: Decimal(o.UniquePhysicians), Format: FormatCount},
	}
}

// SummaryCards are the home page metrics of /analytics/summary.
func SummaryCards(s m.Summary) []Card {
	return []Card{
		{Label: "Patients", Value: Decimal(s.TotalPatients), Format: FormatCount},
		{Label: "Claims", Value: Decimal(s.TotalClaims), Format: FormatCount},
		{Label: "Visits", Value: Decimal(s.TotalVisits), Format: FormatCount},
		{Label: "Total Billed", Value: Decimal(s.TotalBilled), Format: FormatCurrency},
		{Label: "Total Collected", Value: Decimal(s.TotalCollected), Format: FormatCurrency},
		{Label: "Outstanding", Value: Decimal(s.TotalOutstanding), Format: FormatCurrency},
		{Label: "Collection Rate", Value: Decimal(s.CollectionRate), Format: FormatPercent},
		{Label: "Avg Claim", Value: Decimal(s.AvgClaimAmount), Format: FormatCurrency},
		{Label: "Service Cost", Value: Decimal(s.TotalServiceCost), Format: FormatCurrency},
		{Label: "Gross Profit", Value: Decimal(s.GrossProfit), Format: FormatCurrency},
		{Label: "Profit Margin", Value: Decimal(s.ProfitMargin), Format: FormatPercent},
	}
}

// MonthlyTotalCards are the totals the monthly endpoint computes over the
// raw sheets, they include rows without a parseable month.
func MonthlyTotalCards(t m.MonthlyTotals) []Card {
	return []Card{
		{Label: "Total Billed", Value: Decimal(t.TotalBilled), Format: FormatCurrency},
		{Label: "Total Paid", Value: Decimal(t.TotalPaid), Format: FormatCurrency},
		{Label: "Total Costs", Value: Decimal(t.TotalCosts), Format: FormatCurrency},
	}
}

// ResolvePhysician finds `name` in the list /explorer/physicians returns,
// ignoring case and surrounding spaces.
func ResolvePhysician(name string, physicians []string) (string, error) {
	want := strings.TrimSpace(name)
	for _, p := range physicians {
		if strings.EqualFold(strings.TrimSpace(p), want) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown physician %q, expected one of: %s", name, strings.Join(physicians, ", "))
}

// ClaimsOfPhysician keeps the claims whose primary physician is exactly
// `physician`, in order.
func ClaimsOfPhysician(rows []m.ExplorerClaim, physician string) []m.ExplorerClaim {
	var out []m.ExplorerClaim
	for _, r := range rows {
		if r.PrimaryPhysician.String() == physician {
			out = append(out, r)
		}
	}
	return out
}
