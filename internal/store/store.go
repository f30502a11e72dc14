// Package store keeps webpages and the search query log in memory for the
// lifetime of the process.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/juju/clock"

	"searchportal/internal/models"
)

// Store is an in-memory webpage store with an append-only query log.
// It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	clock clock.Clock

	webpages  map[int64]*models.Webpage
	order     []int64
	nextPage  int64
	queries   []models.SearchQuery
	nextQuery int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp webpages and query log entries.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		clock:     clock.WallClock,
		webpages:  make(map[int64]*models.Webpage),
		nextPage:  1,
		nextQuery: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats is a point-in-time summary of the store, used for metrics export.
type Stats struct {
	Webpages      int
	SearchQueries int
}

// Stats returns the current number of webpages and query log entries.
func (s *Store) Stats(ctx context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Webpages:      len(s.order),
		SearchQueries: len(s.queries),
	}
}

// Seed inserts the given webpages, skipping any whose url is already stored.
// It returns the number of webpages inserted.
func (s *Store) Seed(ctx context.Context, inputs []models.WebpageInput) (int, error) {
	inserted := 0
	for _, input := range inputs {
		_, err := s.CreateWebpageIfAbsent(ctx, input)
		if err == nil {
			inserted++
			continue
		}
		if !errors.Is(err, ErrDuplicateURL) {
			return inserted, fmt.Errorf("failed to seed webpage %s: %w", input.URL, err)
		}
	}
	return inserted, nil
}
