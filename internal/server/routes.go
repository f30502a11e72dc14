package server

import (
	"context"

	"searchportal/internal/fetcher"
	"searchportal/internal/handlers"
	"searchportal/internal/handlers/api"
	"searchportal/internal/metrics"
	"searchportal/internal/search"
	"searchportal/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(st *store.Store, service *search.Service, f *fetcher.Fetcher) {
	var (
		apiFetcher  api.PageFetcher
		pageFetcher handlers.PageFetcher
	)
	if f != nil {
		apiFetcher, pageFetcher = f, f
	}

	// Initialize handlers
	searchPage := handlers.NewSearchHandler(service, s.Cfg)
	crawlerPage := handlers.NewCrawlerHandler(st, pageFetcher, s.Cfg)
	searchAPI := api.NewSearchHandler(service, s.Cfg.DefaultPageSize)
	webpageAPI := api.NewWebpageHandler(st, apiFetcher)

	// API routes
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/search", searchAPI.Search)
	apiGroup.Get("/webpages", webpageAPI.List)
	apiGroup.Post("/webpages", webpageAPI.Create)
	apiGroup.All("/webpages", webpageAPI.MethodNotAllowed)
	apiGroup.Post("/webpages/fetch", webpageAPI.Fetch)
	apiGroup.Get("/webpages/:id", webpageAPI.Get)
	apiGroup.Use(api.NotFound)

	// Frontend routes
	s.App.Get("/", searchPage.Index)
	s.App.Get("/search", searchPage.Search)
	s.App.Get("/crawler", crawlerPage.Show)
	s.App.Post("/crawler", crawlerPage.Create)

	// Metrics
	if s.Cfg.MetricsEnabled {
		metrics.Init(metrics.StatsFunc(func(ctx context.Context) metrics.Counts {
			stats := st.Stats(ctx)
			return metrics.Counts{Webpages: stats.Webpages, SearchQueries: stats.SearchQueries}
		}))
		s.App.Get("/metrics", metrics.Handler())
	}
}
