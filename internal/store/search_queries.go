package store

import (
	"context"

	"searchportal/internal/models"
)

// RecordSearchQuery appends an entry to the query log. The log has no read
// path; only its size is exported through Stats.
func (s *Store) RecordSearchQuery(ctx context.Context, query string, resultsCount int) error {
	if resultsCount < 0 {
		return ErrInvalidResultsCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries = append(s.queries, models.SearchQuery{
		ID:           s.nextQuery,
		Query:        query,
		ResultsCount: resultsCount,
		Timestamp:    s.clock.Now(),
	})
	s.nextQuery++
	return nil
}
