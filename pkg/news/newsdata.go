package news

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"
)

const (
	DefaultLanguage = "en"
	DefaultCountry  = "us"
	DefaultLimit    = 10

	defaultTimeout = 30 * time.Second
	pingTimeout    = 5 * time.Second

	maxErrorDetailBytes = 512
)

type NewsdataClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	pingClient *http.Client
}

func NewNewsdataClient(baseURL, apiKey string, timeout time.Duration) *NewsdataClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &NewsdataClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		pingClient: &http.Client{Timeout: pingTimeout},
	}
}

func (c *NewsdataClient) Name() string {
	return "newsdata"
}

func (c *NewsdataClient) FetchNews(params NewsQuery) (Response, error) {
	values := url.Values{}
	if params.Query != "" {
		values.Set("q", params.Query)
	}
	if params.Category != "" {
		values.Set("category", params.Category)
	}
	if params.Country != "" {
		values.Set("country", params.Country)
	}
	language := params.Language
	if language == "" {
		language = DefaultLanguage
	}
	values.Set("language", language)
	values.Set("limit", strconv.Itoa(limitOrDefault(params.Limit)))

	return c.get("/news", values)
}

func (c *NewsdataClient) FetchHeadlines(params HeadlineQuery) (Response, error) {
	values := url.Values{}
	if params.Category != "" {
		values.Set("category", params.Category)
	}
	country := params.Country
	if country == "" {
		country = DefaultCountry
	}
	values.Set("country", country)
	values.Set("limit", strconv.Itoa(limitOrDefault(params.Limit)))

	return c.get("/headlines", values)
}

func (c *NewsdataClient) SearchByTopic(topic string, opts SearchOptions) (Response, error) {
	return c.FetchNews(NewsQuery{
		Query:    topic,
		Country:  opts.Country,
		Language: opts.Language,
		Limit:    opts.Limit,
	})
}

// Ping probes the provider's health endpoint with a short deadline.
func (c *NewsdataClient) Ping() error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("newsdata ping: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.pingClient.Do(req)
	if err != nil {
		return &ProviderError{Message: "no response from news provider", Details: err.Error()}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("news provider returned status %d", resp.StatusCode),
		}
	}
	return nil
}

func (c *NewsdataClient) get(path string, values url.Values) (Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsdata request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Message: "no response from news provider", Details: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Message: "no response from news provider", Details: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("news provider returned status %d", resp.StatusCode),
			Details: truncate(string(body), maxErrorDetailBytes),
		}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("newsdata decode: invalid JSON payload")
	}

	return Response(body), nil
}

func (c *NewsdataClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
