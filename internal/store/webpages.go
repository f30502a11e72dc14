package store

import (
	"context"

	"searchportal/internal/models"
	"searchportal/internal/search"
)

// GetWebpage returns the webpage with the given id.
func (s *Store) GetWebpage(ctx context.Context, id int64) (*models.Webpage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.webpages[id]
	if !ok {
		return nil, ErrWebpageNotFound
	}
	return copyWebpage(page), nil
}

// GetWebpageByURL returns the webpage whose url matches exactly.
func (s *Store) GetWebpageByURL(ctx context.Context, url string) (*models.Webpage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if page := s.findByURL(url); page != nil {
		return copyWebpage(page), nil
	}
	return nil, ErrWebpageNotFound
}

// ListWebpages returns every webpage in insertion order.
func (s *Store) ListWebpages(ctx context.Context) ([]models.Webpage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot(), nil
}

// CreateWebpage assigns the next id, stamps the indexing time and stores the
// webpage. Url uniqueness is the caller's concern; see CreateWebpageIfAbsent.
func (s *Store) CreateWebpage(ctx context.Context, input models.WebpageInput) (*models.Webpage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(input), nil
}

// CreateWebpageIfAbsent stores the webpage unless one with the same url
// exists, in which case it returns ErrDuplicateURL. The check and the insert
// happen under the same lock.
func (s *Store) CreateWebpageIfAbsent(ctx context.Context, input models.WebpageInput) (*models.Webpage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByURL(input.URL) != nil {
		return nil, ErrDuplicateURL
	}
	return s.insert(input), nil
}

// SearchWebpages ranks all stored webpages against the query.
func (s *Store) SearchWebpages(ctx context.Context, query string) ([]models.SearchResult, error) {
	s.mu.RLock()
	docs := s.snapshot()
	s.mu.RUnlock()

	return search.Rank(query, docs), nil
}

// insert must be called with the write lock held.
func (s *Store) insert(input models.WebpageInput) *models.Webpage {
	page := &models.Webpage{
		ID:          s.nextPage,
		URL:         input.URL,
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		LastIndexed: s.clock.Now(),
	}
	s.nextPage++

	s.webpages[page.ID] = page
	s.order = append(s.order, page.ID)
	return copyWebpage(page)
}

func (s *Store) findByURL(url string) *models.Webpage {
	for _, id := range s.order {
		if page := s.webpages[id]; page.URL == url {
			return page
		}
	}
	return nil
}

func (s *Store) snapshot() []models.Webpage {
	pages := make([]models.Webpage, 0, len(s.order))
	for _, id := range s.order {
		pages = append(pages, *s.webpages[id])
	}
	return pages
}

func copyWebpage(page *models.Webpage) *models.Webpage {
	c := *page
	return &c
}
