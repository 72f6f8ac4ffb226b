package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// SearchResult is a single result from a web search.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// SearchResponse is the outcome of one search call. Answer is Tavily's
// direct answer when one was requested and available.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Answer  string         `json:"answer,omitempty"`
}

// TavilyConfig configures the Tavily client. BaseURL exists so tests can
// point at a local server.
type TavilyConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// TavilyClient calls the Tavily web search API.
type TavilyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewTavilyClient creates a Tavily client from config.
func NewTavilyClient(cfg TavilyConfig) *TavilyClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultTavilyBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TavilyClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name implements Tool.
func (c *TavilyClient) Name() string { return "tavily" }

// Capabilities implements Tool.
func (c *TavilyClient) Capabilities() []string {
	return []string{CapabilityWebSearch}
}

// Manifest implements Tool.
func (c *TavilyClient) Manifest() Manifest {
	return Manifest{
		Name:         c.Name(),
		Version:      "0.1.0",
		Description:  "Tavily web search API client",
		Capabilities: c.Capabilities(),
		ConfigKeys:   []string{"TAVILY_API_KEY"},
	}
}

// HealthCheck issues a minimal search to verify connectivity.
func (c *TavilyClient) HealthCheck(ctx context.Context) error {
	_, err := c.search(ctx, tavilyRequest{
		Query:      "ping",
		MaxResults: 1,
	})
	return err
}

// Search executes a web search. maxResults <= 0 falls back to 5. The
// response includes Tavily's direct answer when available.
func (c *TavilyClient) Search(ctx context.Context, query string, maxResults int) (*SearchResponse, error) {
	if maxResults <= 0 {
		maxResults = 5
	}
	return c.search(ctx, tavilyRequest{
		Query:         query,
		MaxResults:    maxResults,
		SearchDepth:   "basic",
		IncludeAnswer: true,
	})
}

// SearchMany runs the queries concurrently. Any single failure fails the
// whole batch; callers that want partial results issue searches
// individually.
func (c *TavilyClient) SearchMany(ctx context.Context, queries []string, maxResultsPerQuery int) ([]*SearchResponse, error) {
	if maxResultsPerQuery <= 0 {
		maxResultsPerQuery = 3
	}

	type indexed struct {
		i    int
		resp *SearchResponse
		err  error
	}
	results := make(chan indexed, len(queries))
	for i, q := range queries {
		go func(i int, q string) {
			resp, err := c.Search(ctx, q, maxResultsPerQuery)
			results <- indexed{i: i, resp: resp, err: err}
		}(i, q)
	}

	out := make([]*SearchResponse, len(queries))
	var firstErr error
	for range queries {
		r := <-results
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		out[r.i] = r.resp
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	MaxResults    int    `json:"max_results"`
	SearchDepth   string `json:"search_depth,omitempty"`
	IncludeAnswer bool   `json:"include_answer"`
}

type tavilyResponse struct {
	Results []SearchResult `json:"results"`
	Answer  string         `json:"answer"`
}

func (c *TavilyClient) search(ctx context.Context, reqBody tavilyRequest) (*SearchResponse, error) {
	reqBody.APIKey = c.apiKey
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ToolError{Tool: c.Name(), Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ToolError{Tool: c.Name(), Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ToolError{Tool: c.Name(), Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))}
	}

	var parsed tavilyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ToolError{Tool: c.Name(), Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	return &SearchResponse{
		Query:   reqBody.Query,
		Results: parsed.Results,
		Answer:  parsed.Answer,
	}, nil
}
