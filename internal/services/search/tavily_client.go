// File: internal/services/search/tavily_client.go
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Domain lists applied server-side by the search provider. The allow list
// keeps results on established medical publishers; the deny list keeps
// social and entertainment noise out even when it mentions health topics.
var (
	trustedDomains = []string{
		"nih.gov",
		"cdc.gov",
		"who.int",
		"mayoclinic.org",
		"nhs.uk",
		"pubmed.ncbi.nlm.nih.gov",
		"webmd.com",
		"medlineplus.gov",
		"healthline.com",
		"clevelandclinic.org",
	}
	blockedDomains = []string{
		"facebook.com",
		"twitter.com",
		"x.com",
		"instagram.com",
		"tiktok.com",
		"reddit.com",
		"youtube.com",
		"pinterest.com",
	}
)

// TavilyClient calls the Tavily Search API over plain HTTP.
type TavilyClient struct {
	config     *Config
	httpClient *http.Client
}

func NewTavilyClient(config *Config) *TavilyClient {
	return &TavilyClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

type tavilyRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	MaxResults     int      `json:"max_results"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
}

type tavilyResponse struct {
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}

// Search issues one search request restricted to the trusted domain lists.
func (c *TavilyClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if maxResults <= 0 || maxResults > c.config.MaxResults {
		maxResults = c.config.MaxResults
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:         c.config.APIKey,
		Query:          query,
		SearchDepth:    "basic",
		MaxResults:     maxResults * 2, // filtered down afterwards
		IncludeDomains: trustedDomains,
		ExcludeDomains: blockedDomains,
	})
	if err != nil {
		return nil, NewSearchError("encode", "failed to encode search request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, NewSearchError("request", "failed to build search request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewSearchError("request", "search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, NewSearchError("request",
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(raw)), nil)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, NewSearchError("decode", "failed to decode search response", err)
	}

	return FilterResults(parsed.Results, maxResults), nil
}
