// Package search scores stored webpages against a query and runs searches
// on behalf of the HTTP layers.
package search

import (
	"slices"
	"strings"

	"searchportal/internal/models"
)

// Field weights and the bonus for matching as many fields as there are terms.
const (
	TitleWeight       = 10
	DescriptionWeight = 5
	ContentWeight     = 3
	AllTermsBonus     = 5

	// SnippetRadius is the number of characters kept on each side of the
	// first content match.
	SnippetRadius = 50
	// Ellipsis wraps every content snippet.
	Ellipsis = "..."
)

// Terms normalizes a query into lowercase whitespace-separated terms.
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

// Rank scores every document against the query and returns the matches
// ordered by descending relevance. Documents with equal scores keep their
// order in docs. Rank does not modify docs.
func Rank(query string, docs []models.Webpage) []models.SearchResult {
	terms := Terms(query)
	results := make([]models.SearchResult, 0)
	if len(terms) == 0 {
		return results
	}

	for _, doc := range docs {
		if result, ok := score(terms, doc); ok {
			results = append(results, result)
		}
	}

	slices.SortStableFunc(results, func(a, b models.SearchResult) int {
		return b.RelevanceScore - a.RelevanceScore
	})
	return results
}

// score computes the relevance of a single document. A term found in two
// fields counts twice toward matching, so the all-terms bonus is granted
// whenever the field-match count happens to equal the number of terms.
func score(terms []string, doc models.Webpage) (models.SearchResult, bool) {
	title := strings.ToLower(doc.Title)
	description := strings.ToLower(doc.Description)
	content := strings.ToLower(doc.Content)

	relevance := 0
	matching := 0
	snippet := doc.Description

	for _, term := range terms {
		if strings.Contains(title, term) {
			relevance += TitleWeight
			matching++
		}
		if strings.Contains(description, term) {
			relevance += DescriptionWeight
			matching++
		}
		if strings.Contains(content, term) {
			relevance += ContentWeight
			matching++
			// The last content match in term order decides the snippet.
			if s, ok := Snippet(doc.Content, content, term); ok {
				snippet = s
			}
		}
	}

	if matching == 0 {
		return models.SearchResult{}, false
	}
	if matching == len(terms) {
		relevance += AllTermsBonus
	}

	return models.SearchResult{
		ID:             doc.ID,
		URL:            doc.URL,
		Title:          doc.Title,
		Description:    doc.Description,
		Snippet:        snippet,
		RelevanceScore: relevance,
	}, true
}

// Snippet cuts a window of SnippetRadius characters around the first
// occurrence of term in lowerContent and returns the same window of the
// original content wrapped in ellipses. Positions are counted in runes.
func Snippet(content, lowerContent, term string) (string, bool) {
	byteIdx := strings.Index(lowerContent, term)
	if byteIdx < 0 {
		return "", false
	}

	lower := []rune(lowerContent)
	matchStart := len([]rune(lowerContent[:byteIdx]))
	matchEnd := matchStart + len([]rune(term))

	original := []rune(content)
	// Lowercasing can change the rune count of a few scripts; clamp to the
	// original so the window never runs past it.
	limit := min(len(lower), len(original))

	start := max(0, matchStart-SnippetRadius)
	end := min(limit, matchEnd+SnippetRadius)
	if start > end {
		start = end
	}

	return Ellipsis + string(original[start:end]) + Ellipsis, true
}
