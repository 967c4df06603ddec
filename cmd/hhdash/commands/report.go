package commands

import (
	"context"

	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/internal/models"
	"homehealth-dashboard/internal/report"

	"github.com/spf13/cobra"
)

func init() {
	reportCmd.AddCommand(
		newViewCmd(report.Revenue, rowsOnly((*api.Client).RevenueByClaim)),
		newViewCmd(report.ServiceCosts, rowsOnly((*api.Client).ServiceCosts)),
		newViewCmd(report.PatientProfitability, rowsOnly((*api.Client).ProfitabilityByPatient)),
		newViewCmd(report.Providers, rowsOnly((*api.Client).ProviderPerformance)),
		newViewCmd(report.Insurance, rowsOnly((*api.Client).InsurancePerformance)),
		newViewCmd(report.Codes, rowsOnly((*api.Client).CodePerformance)),
		newViewCmd(report.ServiceSummary, rowsOnly((*api.Client).ServiceCostSummary)),
		newViewCmd(report.Physicians, func(ctx context.Context, client *api.Client) ([]models.PhysicianProfit, []report.Card, error) {
			analysis, err := client.ProfitabilityAnalysis(ctx)
			return analysis.ByPhysician, nil, err
		}),
		newViewCmd(report.Unmatched, func(ctx context.Context, client *api.Client) ([]models.UnmatchedCost, []report.Card, error) {
			analysis, err := client.ProfitabilityAnalysis(ctx)
			return analysis.UnmatchedPatients, nil, err
		}),
		newViewCmd(report.Overhead, func(ctx context.Context, client *api.Client) ([]models.OverheadCost, []report.Card, error) {
			analysis, err := client.ProfitabilityAnalysis(ctx)
			return analysis.Overhead, nil, err
		}),
		claimsCmd(),
		newViewCmd(report.Costs, func(ctx context.Context, client *api.Client) ([]models.ExplorerCost, []report.Card, error) {
			dataset, err := client.ExplorerCosts(ctx)
			return dataset.Data, nil, err
		}),
		newViewCmd(report.Monthly, func(ctx context.Context, client *api.Client) ([]models.MonthRow, []report.Card, error) {
			summary, err := client.MonthlySummary(ctx)
			return summary.Data, report.MonthlyTotalCards(summary.Summary), err
		}),
	)
	rootCmd.AddCommand(reportCmd)
}

func claimsCmd() *cobra.Command {
	var physician string
	cmd := newViewCmd(report.Claims, func(ctx context.Context, client *api.Client) ([]models.ExplorerClaim, []report.Card, error) {
		if physician == "" {
			dataset, err := client.ExplorerClaims(ctx)
			return dataset.Data, nil, err
		}

		var (
			claims     report.Page[models.Dataset[models.ExplorerClaim]]
			physicians report.Page[[]string]
		)
		err := report.All(
			ctx,
			func(ctx context.Context) error { return claims.Load(ctx, client.ExplorerClaims) },
			func(ctx context.Context) error { return physicians.Load(ctx, client.Physicians) },
		)
		if err != nil {
			return nil, nil, err
		}
		names, _ := physicians.Data()
		name, err := report.ResolvePhysician(physician, names)
		if err != nil {
			return nil, nil, err
		}
		dataset, _ := claims.Data()
		return report.ClaimsOfPhysician(dataset.Data, name), nil, nil
	})
	cmd.Flags().StringVar(&physician, "physician", "", "only show claims of this primary physician")
	return cmd
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show one of the analytics tables.",
}
