package commands

import (
	"context"
	"fmt"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/cmd/hhdash/utils"
	"homehealth-dashboard/internal/models"
	"homehealth-dashboard/internal/report"

	"github.com/spf13/cobra"
)

const overviewTopN = 5

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard overview: headline metrics, top payers and service costs.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := globals.Get(ctx).Client

		var (
			summary   report.Page[models.Summary]
			insurance report.Page[[]models.InsurancePerformance]
			services  report.Page[[]models.ServiceCostSummary]
		)
		err := report.All(
			ctx,
			func(ctx context.Context) error { return summary.Load(ctx, client.Summary) },
			func(ctx context.Context) error { return insurance.Load(ctx, client.InsurancePerformance) },
			func(ctx context.Context) error { return services.Load(ctx, client.ServiceCostSummary) },
		)
		if err != nil {
			return err
		}

		s, _ := summary.Data()
		title := "Overview"
		if s.LastUpdated != "" {
			title = fmt.Sprintf("Overview (updated %s)", s.LastUpdated)
		}
		utils.RenderCards(title, report.SummaryCards(s))

		payers, _ := insurance.Data()
		payerView := report.NewView(report.Insurance, payers)
		fmt.Println(report.Insurance.Title)
		renderTable(report.Insurance.Columns, report.Limit(payerView.Rows(), overviewTopN).Rows)

		serviceRows, _ := services.Data()
		serviceView := report.NewView(report.ServiceSummary, serviceRows)
		fmt.Println(report.ServiceSummary.Title)
		renderTable(report.ServiceSummary.Columns, serviceView.Rows())
		return nil
	},
}
