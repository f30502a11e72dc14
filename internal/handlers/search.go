package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"searchportal/internal/config"
	"searchportal/internal/models"
	"searchportal/internal/pagination"
	"searchportal/internal/search"
	"searchportal/internal/validation"
)

// SearchHandler renders the home and results pages.
type SearchHandler struct {
	service *search.Service
	cfg     *config.Config
}

// NewSearchHandler creates a new search page handler.
func NewSearchHandler(service *search.Service, cfg *config.Config) *SearchHandler {
	return &SearchHandler{service: service, cfg: cfg}
}

// ResultView is a search result prepared for the results template.
type ResultView struct {
	models.SearchResult
	DisplayURL string
	Featured   bool
}

// PageLink is an entry of the page strip under the results.
type PageLink struct {
	pagination.Item
	Href string
}

// Index renders the home page with search box.
func (h *SearchHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": h.cfg.SiteTitle,
	}, h.cfg))
}

// Search renders the search results page. An empty query goes back home.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		return c.Redirect().To("/")
	}

	params, err := validation.ParseSearchParams(query, lenientPage(c.Query("page")), strconv.Itoa(h.cfg.DefaultPageSize))
	if err != nil {
		if !errors.Is(err, validation.ErrInvalidSearchParams) {
			return err
		}
		return c.Status(fiber.StatusBadRequest).Render("search", MergeBranding(fiber.Map{
			"Title":   query,
			"Query":   query,
			"Compact": true,
			"Error":   err.Error(),
		}, h.cfg))
	}

	resp, err := h.service.Search(c.Context(), params)
	if err != nil {
		return err
	}

	meta := resp.Metadata
	results := make([]ResultView, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = ResultView{
			SearchResult: r,
			DisplayURL:   displayURL(r.URL),
			Featured:     r.IsFeatured(),
		}
	}

	data := fiber.Map{
		"Title":        query,
		"Query":        query,
		"Compact":      true,
		"Results":      results,
		"TotalResults": meta.TotalResults,
		"Seconds":      fmt.Sprintf("%.2f", float64(meta.ExecutionTimeMs)/1000),
		"CurrentPage":  meta.CurrentPage,
		"TotalPages":   meta.TotalPages,
	}
	if page := pagination.New(meta.TotalResults, meta.CurrentPage, meta.PageSize); page.TotalPages > 1 {
		data["Pages"] = h.pageLinks(query, page.CurrentPage, page.TotalPages)
		if page.HasNext() {
			data["NextHref"] = pageHref(query, page.CurrentPage+1)
		}
		if page.CurrentPage > 1 {
			data["PrevHref"] = pageHref(query, page.CurrentPage-1)
		}
	}

	return c.Render("search", MergeBranding(data, h.cfg))
}

func (h *SearchHandler) pageLinks(query string, current, total int) []PageLink {
	items := pagination.Window(current, total)
	links := make([]PageLink, len(items))
	for i, item := range items {
		links[i] = PageLink{Item: item}
		if !item.Ellipsis {
			links[i].Href = pageHref(query, item.Number)
		}
	}
	return links
}

func pageHref(query string, page int) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("page", strconv.Itoa(page))
	return "/search?" + v.Encode()
}
