package models

// SearchResult is a scored match computed for a single search. It is never
// stored.
type SearchResult struct {
	ID             int64  `json:"id"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Snippet        string `json:"snippet"`
	RelevanceScore int    `json:"relevanceScore"`
}

// IsFeatured reports whether the result is rendered in the highlighted style.
func (r SearchResult) IsFeatured() bool {
	return r.RelevanceScore > 15
}

// SearchMetadata describes the page of results being returned.
type SearchMetadata struct {
	Query           string `json:"query"`
	TotalResults    int    `json:"totalResults"`
	CurrentPage     int    `json:"currentPage"`
	TotalPages      int    `json:"totalPages"`
	PageSize        int    `json:"pageSize"`
	ExecutionTimeMs int64  `json:"executionTimeMs"`
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Results  []SearchResult `json:"results"`
	Metadata SearchMetadata `json:"metadata"`
}
