package api

import (
	"context"
	"net/http"
	"net/url"

	"homehealth-dashboard/internal/models"
)

func (c *Client) Summary(ctx context.Context) (models.Summary, error) {
	var out models.Summary
	err := c.get(ctx, "/analytics/summary", &out)
	return out, err
}

func (c *Client) RevenueByClaim(ctx context.Context) ([]models.RevenueByClaim, error) {
	var out []models.RevenueByClaim
	err := c.get(ctx, "/analytics/revenue-by-claim", &out)
	return out, err
}

func (c *Client) ServiceCosts(ctx context.Context) ([]models.ServiceCost, error) {
	var out []models.ServiceCost
	err := c.get(ctx, "/analytics/service-costs", &out)
	return out, err
}

func (c *Client) ProfitabilityByPatient(ctx context.Context) ([]models.PatientProfitability, error) {
	var out []models.PatientProfitability
	err := c.get(ctx, "/analytics/profitability-by-patient", &out)
	return out, err
}

func (c *Client) ProviderPerformance(ctx context.Context) ([]models.ProviderPerformance, error) {
	var out []models.ProviderPerformance
	err := c.get(ctx, "/analytics/provider-performance", &out)
	return out, err
}

func (c *Client) CodePerformance(ctx context.Context) ([]models.CodePerformance, error) {
	var out []models.CodePerformance
	err := c.get(ctx, "/analytics/code-performance", &out)
	return out, err
}

func (c *Client) ServiceCostSummary(ctx context.Context) ([]models.ServiceCostSummary, error) {
	var out []models.ServiceCostSummary
	err := c.get(ctx, "/analytics/service-cost-summary", &out)
	return out, err
}

func (c *Client) InsurancePerformance(ctx context.Context) ([]models.InsurancePerformance, error) {
	var out []models.InsurancePerformance
	err := c.get(ctx, "/analytics/insurance-performance", &out)
	return out, err
}

// Patient returns everything the backend knows about one patient, the
// name is matched case-insensitively. an unknown name is a 404.
func (c *Client) Patient(ctx context.Context, name string) (models.PatientDetail, error) {
	var out models.PatientDetail
	err := c.get(ctx, "/analytics/patient/"+url.PathEscape(name), &out)
	return out, err
}

func (c *Client) Refresh(ctx context.Context) (models.RefreshResult, error) {
	var out models.RefreshResult
	err := c.get(ctx, "/analytics/refresh", &out)
	return out, err
}

type processRequest struct {
	PDFDirectory string `json:"pdf_directory"`
}

// ProcessPDFs asks the backend to extract `dir` and regenerate every
// analytics table.
func (c *Client) ProcessPDFs(ctx context.Context, dir string) (models.ProcessResult, error) {
	var out models.ProcessResult
	err := c.fetch(ctx, http.MethodPost, "/process-pdfs", processRequest{PDFDirectory: dir}, &out)
	return out, err
}

func (c *Client) ProfitabilityAnalysis(ctx context.Context) (models.ProfitabilityAnalysis, error) {
	var out models.ProfitabilityAnalysis
	err := c.get(ctx, "/profitability/analysis", &out)
	return out, err
}

func (c *Client) ExplorerClaims(ctx context.Context) (models.Dataset[models.ExplorerClaim], error) {
	var out models.Dataset[models.ExplorerClaim]
	err := c.get(ctx, "/explorer/claims", &out)
	return out, err
}

func (c *Client) ExplorerCosts(ctx context.Context) (models.Dataset[models.ExplorerCost], error) {
	var out models.Dataset[models.ExplorerCost]
	err := c.get(ctx, "/explorer/costs", &out)
	return out, err
}

func (c *Client) MonthlySummary(ctx context.Context) (models.MonthlySummary, error) {
	var out models.MonthlySummary
	err := c.get(ctx, "/explorer/monthly-summary", &out)
	return out, err
}

func (c *Client) Physicians(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, "/explorer/physicians", &out)
	return out, err
}
