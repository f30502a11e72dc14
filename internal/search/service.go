package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"searchportal/internal/metrics"
	"searchportal/internal/models"
	"searchportal/internal/pagination"
	"searchportal/internal/validation"
)

// Repository is the storage a Service searches and logs queries to.
type Repository interface {
	SearchWebpages(ctx context.Context, query string) ([]models.SearchResult, error)
	RecordSearchQuery(ctx context.Context, query string, resultsCount int) error
}

// Service runs paginated searches and records them in the query log.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for query log failures.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a search service backed by repo.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search ranks the stored webpages, returns the requested page and logs the
// query with its total result count. Failing to log the query does not fail
// the search.
func (s *Service) Search(ctx context.Context, params validation.SearchParams) (*models.SearchResponse, error) {
	started := s.now()
	ranked, err := s.repo.SearchWebpages(ctx, params.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to search webpages: %w", err)
	}
	elapsed := s.now().Sub(started)

	page := pagination.New(len(ranked), params.Page, params.PageSize)

	if err := s.repo.RecordSearchQuery(ctx, params.Query, len(ranked)); err != nil {
		s.logger.Error("failed to record search query", "query", params.Query, "error", err)
	}
	metrics.ObserveSearch(elapsed, len(ranked))

	results := pagination.Slice(ranked, page)
	if results == nil {
		results = []models.SearchResult{}
	}

	return &models.SearchResponse{
		Results: results,
		Metadata: models.SearchMetadata{
			Query:           params.Query,
			TotalResults:    page.TotalResults,
			CurrentPage:     page.CurrentPage,
			TotalPages:      page.TotalPages,
			PageSize:        page.PageSize,
			ExecutionTimeMs: elapsed.Milliseconds(),
		},
	}, nil
}
