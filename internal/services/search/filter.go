// File: internal/services/search/filter.go
package search

import (
	"sort"
	"strings"
)

// searchTriggers classify a query as worth a web search. The list is fixed;
// everything else stays on the cheaper FAQ/model path.
var searchTriggers = []string{
	"latest studies",
	"latest research",
	"recent research",
	"recent studies",
	"clinical trial",
	"clinical trials",
	"new treatment",
	"recent findings",
	"current guidelines",
	"what does the latest",
}

// medicalKeywords: a result must carry at least one of these in its title,
// content, or URL to survive filtering.
var medicalKeywords = []string{
	"health", "medical", "medicine", "clinical", "disease", "treatment",
	"symptom", "diagnosis", "patient", "therapy", "drug", "vaccine",
	"diabetes", "cancer", "cardio", "infection", "study", "trial",
}

// offTopicKeywords reject results that slipped through the domain lists.
var offTopicKeywords = []string{
	"celebrity", "gossip", "horoscope", "lottery", "casino",
	"recipe", "movie", "cryptocurrency",
}

// IsSearchWorthy reports whether the query contains a search trigger phrase.
func IsSearchWorthy(query string) bool {
	lower := strings.ToLower(query)
	for _, trigger := range searchTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// FilterResults enforces the medical-keyword requirement and the off-topic
// rejects, sorts by provider relevance score, and truncates to maxResults.
func FilterResults(results []Result, maxResults int) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		haystack := strings.ToLower(r.Title + " " + r.Content + " " + r.URL)
		if !containsAny(haystack, medicalKeywords) {
			continue
		}
		if containsAny(haystack, offTopicKeywords) {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	if maxResults > 0 && len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}
	return filtered
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
