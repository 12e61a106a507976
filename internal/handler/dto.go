package handler

// NewsQueryRequest is the POST /api/news/query body. Limit is a pointer so an
// omitted value can be told apart from an explicit one.
type NewsQueryRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Country  string `json:"country"`
	Language string `json:"language"`
	Limit    *int   `json:"limit"`
}

type ServiceInfoResponse struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	Service           string `json:"service"`
	Environment       string `json:"environment"`
	ProviderReachable bool   `json:"provider_reachable"`
	Timestamp         string `json:"timestamp"`
}
