package models

// APIInfo is served at the api root.
type APIInfo struct {
	Message     string   `json:"message"`
	Version     string   `json:"version"`
	Status      string   `json:"status"`
	Endpoints   []string `json:"endpoints"`
	LastUpdated Text     `json:"last_updated"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type VerifyResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

type RefreshResult struct {
	Message      string   `json:"message"`
	LastUpdated  Text     `json:"last_updated"`
	TablesLoaded []string `json:"tables_loaded"`
}

type ProcessResult struct {
	Message            string `json:"message"`
	ClaimsExtracted    int    `json:"claims_extracted"`
	VisitsExtracted    int    `json:"visits_extracted"`
	AnalyticsGenerated bool   `json:"analytics_generated"`
	LastUpdated        Text   `json:"last_updated"`
}
