package commands

import (
	"fmt"
	"strings"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/internal/models"
	"homehealth-dashboard/internal/namematch"
	"homehealth-dashboard/internal/report"

	"github.com/spf13/cobra"
)

const (
	suggestionCount     = 3
	suggestionThreshold = 0.8
)

var (
	patientClaimColumns = []report.Column[models.ARClaim]{
		report.TextColumn("claim_code", "Claim Code", func(r models.ARClaim) models.Text { return r.ClaimCode }),
		report.TextColumn("status", "Status", func(r models.ARClaim) models.Text { return r.Status }),
		report.DateColumn("start", "Period Start", func(r models.ARClaim) models.Date { return r.PeriodStart }),
		report.DateColumn("end", "Period End", func(r models.ARClaim) models.Date { return r.PeriodEnd }),
		report.NumberColumn("visits", "Visits", report.FormatCount, func(r models.ARClaim) models.Number { return r.TotalVisits }),
		report.NumberColumn("expected", "Expected Payment", report.FormatCurrency, func(r models.ARClaim) models.Number { return r.ExpectedPayment }),
		report.NumberColumn("posted", "Posted Payments", report.FormatCurrency, func(r models.ARClaim) models.Number { return r.PostedPayments }),
		report.NumberColumn("balance", "Balance", report.FormatCurrency, func(r models.ARClaim) models.Number { return r.Balance }),
	}
	patientVisitColumns = []report.Column[models.Visit]{
		report.DateColumn("date", "Date", func(r models.Visit) models.Date { return r.Date }),
		report.TextColumn("claim", "Claim #", func(r models.Visit) models.Text { return r.ClaimNumber }),
		report.TextColumn("caregiver", "Caregiver", func(r models.Visit) models.Text { return r.Caregiver }),
		report.TextColumn("service", "Service", func(r models.Visit) models.Text { return r.Service }),
		report.NumberColumn("qty", "Qty", report.FormatPlain, func(r models.Visit) models.Number { return r.Qty }),
		report.NumberColumn("amount", "Amount", report.FormatCurrency, func(r models.Visit) models.Number { return r.Amount }),
	}
	patientServiceColumns = []report.Column[models.ServiceRecord]{
		report.TextColumn("claim_code", "Claim Code", func(r models.ServiceRecord) models.Text { return r.ClaimCode }),
		report.TextColumn("service", "Service", func(r models.ServiceRecord) models.Text { return r.ServiceType }),
		report.NumberColumn("visits", "Visits", report.FormatCount, func(r models.ServiceRecord) models.Number { return r.ServiceVisits }),
		report.NumberColumn("cost", "Total Cost", report.FormatCurrency, func(r models.ServiceRecord) models.Number { return r.TotalCost }),
		report.NumberColumn("expected", "Expected Payment", report.FormatCurrency, func(r models.ServiceRecord) models.Number { return r.ExpectedPayment }),
	}
)

func init() {
	rootCmd.AddCommand(patientCmd)
}

var patientCmd = &cobra.Command{
	Use:   "patient <name>",
	Short: "Show the claims, visits, services and profitability of one patient.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := globals.Get(ctx).Client
		name := strings.Join(args, " ")

		detail, err := client.Patient(ctx, name)
		if api.IsNotFound(err) {
			claims, listErr := client.RevenueByClaim(ctx)
			if listErr != nil {
				return err
			}
			suggestions := namematch.Suggest(name, patientNames(claims), suggestionCount, suggestionThreshold)
			if len(suggestions) == 0 {
				return err
			}
			var names []string
			for _, s := range suggestions {
				names = append(names, fmt.Sprintf("%q", s.Name))
			}
			return fmt.Errorf("%w\ndid you mean: %s", err, strings.Join(names, ", "))
		}
		if err != nil {
			return err
		}

		if len(detail.Profitability) > 0 {
			cycles := detail.Profitability
			sum := func(get func(models.PatientProfitability) models.Number) string {
				total := report.Sum(cycles, func(p models.PatientProfitability) float64 { return get(p).Float() })
				return report.FormatValue(report.FormatCurrency, total)
			}
			fmt.Printf(
				"%s: %d cycles, billed %s, received %s, cost %s, profit %s\n",
				name,
				len(cycles),
				sum(func(p models.PatientProfitability) models.Number { return p.RevenueBilled }),
				sum(func(p models.PatientProfitability) models.Number { return p.RevenueReceived }),
				sum(func(p models.PatientProfitability) models.Number { return p.TotalCost }),
				sum(func(p models.PatientProfitability) models.Number { return p.GrossProfit }),
			)
		}

		fmt.Printf("Claims (%d)\n", len(detail.Claims))
		renderTable(patientClaimColumns, detail.Claims)
		fmt.Printf("Visits (%d)\n", len(detail.Visits))
		renderTable(patientVisitColumns, report.Sort(detail.Visits, patientVisitColumns[0], false))
		fmt.Printf("Services (%d)\n", len(detail.Services))
		renderTable(patientServiceColumns, detail.Services)
		return nil
	},
}

func patientNames(claims []models.RevenueByClaim) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, c := range claims {
		n := c.PatientName.String()
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}
