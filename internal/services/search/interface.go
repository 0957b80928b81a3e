// File: internal/services/search/interface.go
package search

import "context"

// Result is a single ranked search hit.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Provider issues web searches against trusted medical domains.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}
