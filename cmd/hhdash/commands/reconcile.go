package commands

import (
	"context"
	"fmt"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/cmd/hhdash/utils"
	"homehealth-dashboard/internal/models"
	"homehealth-dashboard/internal/namematch"
	"homehealth-dashboard/internal/report"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var reconcileThreshold float64

func init() {
	reconcileCmd.Flags().Float64Var(&reconcileThreshold, "threshold", suggestionThreshold, "minimum similarity (0 to 1) for a pair to be listed")
	rootCmd.AddCommand(reconcileCmd)
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Pair cost records with no matching claim to the closest claim patient name.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := globals.Get(ctx).Client

		var (
			analysis report.Page[models.ProfitabilityAnalysis]
			claims   report.Page[models.Dataset[models.ExplorerClaim]]
		)
		err := report.All(
			ctx,
			func(ctx context.Context) error { return analysis.Load(ctx, client.ProfitabilityAnalysis) },
			func(ctx context.Context) error { return claims.Load(ctx, client.ExplorerClaims) },
		)
		if err != nil {
			return err
		}

		a, _ := analysis.Data()
		c, _ := claims.Data()

		amounts := make(map[string]float64)
		var unmatched []string
		for _, u := range a.UnmatchedPatients {
			name := u.PatientName.String()
			if name == "" {
				continue
			}
			if _, ok := amounts[name]; !ok {
				unmatched = append(unmatched, name)
			}
			amounts[name] += u.Amount.Float()
		}
		if len(unmatched) == 0 {
			fmt.Println("Every cost record matches a claim.")
			return nil
		}

		var claimNames []string
		seen := make(map[string]struct{})
		for _, row := range c.Data {
			name := row.PatientName.String()
			if _, ok := seen[name]; ok || name == "" {
				continue
			}
			seen[name] = struct{}{}
			claimNames = append(claimNames, name)
		}

		links := namematch.CreateLinks(unmatched, claimNames, reconcileThreshold)

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Cost Record Name", "Claim Patient Name", "Similarity", "Unmatched Cost"})
		for _, link := range links {
			t.AppendRow(table.Row{
				link.Left,
				link.Right,
				fmt.Sprintf("%.0f%%", link.Correlation*100),
				report.FormatValue(report.FormatCurrency, report.Decimal(models.Number(amounts[link.Left]))),
			})
		}
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
		})
		t.Render()
		fmt.Printf("%d of %d unmatched names paired.\n", len(links), len(unmatched))
		return nil
	},
}
