package commands

import (
	"fmt"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/cmd/hhdash/utils"
	"homehealth-dashboard/internal/models"
	"homehealth-dashboard/internal/report"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profitabilityCmd)
}

var profitabilityCmd = &cobra.Command{
	Use:   "profitability",
	Short: "Show overall profitability and the breakdown by physician.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		analysis, err := globals.Get(ctx).Client.ProfitabilityAnalysis(ctx)
		if err != nil {
			return err
		}

		title := "Profitability"
		if analysis.GeneratedAt != "" {
			title = fmt.Sprintf("Profitability (generated %s)", analysis.GeneratedAt)
		}
		utils.RenderCards(title, report.OverallCards(analysis.Overall))

		physicians := report.NewView(report.Physicians, analysis.ByPhysician)
		renderTable(report.Physicians.Columns, physicians.Rows())

		unmatched := report.Sum(analysis.UnmatchedPatients, func(u models.UnmatchedCost) float64 { return u.Amount.Float() })
		fmt.Printf(
			"%d unmatched cost records (%s), see `hhdash report unmatched` and `hhdash reconcile`.\n",
			len(analysis.UnmatchedPatients),
			report.FormatValue(report.FormatCurrency, unmatched),
		)
		fmt.Printf(
			"%d employees with overhead costs, see `hhdash report overhead`.\n",
			len(analysis.Overhead),
		)
		return nil
	},
}
