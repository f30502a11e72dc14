package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"searchportal/internal/config"
	"searchportal/internal/fetcher"
	"searchportal/internal/models"
	"searchportal/internal/store"
	"searchportal/internal/validation"
)

// PageFetcher downloads a remote page for indexing.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*models.WebpageInput, error)
}

// CrawlerHandler renders the add-webpage page and handles its form.
type CrawlerHandler struct {
	store   *store.Store
	fetcher PageFetcher
	cfg     *config.Config
}

// NewCrawlerHandler creates a new crawler page handler. A nil fetcher hides
// the fetch button.
func NewCrawlerHandler(s *store.Store, f PageFetcher, cfg *config.Config) *CrawlerHandler {
	return &CrawlerHandler{store: s, fetcher: f, cfg: cfg}
}

// Show renders the form and the list of indexed webpages.
func (h *CrawlerHandler) Show(c fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, models.WebpageInput{}, nil)
}

// Create indexes the submitted webpage. With action=fetch only the url is
// used and the remaining fields are read from the live page.
func (h *CrawlerHandler) Create(c fiber.Ctx) error {
	input := models.WebpageInput{
		URL:         strings.TrimSpace(c.FormValue("url")),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Content:     c.FormValue("content"),
	}

	if c.FormValue("action") == "fetch" && h.fetcher != nil {
		fetched, status, msg := h.fetch(c.Context(), input.URL)
		if fetched == nil {
			return h.render(c, status, input, errorFlash(msg))
		}
		input = *fetched
	}

	if err := validation.ValidateWebpageInput(input); err != nil {
		return h.render(c, fiber.StatusBadRequest, input, errorFlash(err.Error()))
	}

	webpage, err := h.store.CreateWebpageIfAbsent(c.Context(), input)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateURL) {
			return h.render(c, fiber.StatusConflict, input, errorFlash("यह URL पहले से इंडेक्स में है"))
		}
		return err
	}

	slog.Info("webpage indexed", "id", webpage.ID, "url", webpage.URL)
	return h.render(c, fiber.StatusCreated, models.WebpageInput{}, successFlash("वेबपेज सफलतापूर्वक जोड़ा गया: "+webpage.Title))
}

func (h *CrawlerHandler) fetch(ctx context.Context, url string) (*models.WebpageInput, int, string) {
	if valid, msg := validation.ValidateURL(url); !valid {
		return nil, fiber.StatusBadRequest, msg
	}
	if _, err := h.store.GetWebpageByURL(ctx, url); err == nil {
		return nil, fiber.StatusConflict, "यह URL पहले से इंडेक्स में है"
	}

	input, err := h.fetcher.Fetch(ctx, url)
	switch {
	case err == nil:
		return input, fiber.StatusOK, ""
	case errors.Is(err, fetcher.ErrBlockedURL):
		return nil, fiber.StatusBadRequest, err.Error()
	default:
		return nil, fiber.StatusBadGateway, err.Error()
	}
}

func (h *CrawlerHandler) render(c fiber.Ctx, status int, form models.WebpageInput, flash *Flash) error {
	webpages, err := h.store.ListWebpages(c.Context())
	if err != nil {
		return err
	}

	return c.Status(status).Render("crawler", MergeBranding(fiber.Map{
		"Title":     "क्रॉलर",
		"Form":      form,
		"Flash":     flash,
		"Webpages":  webpages,
		"CanFetch":  h.fetcher != nil,
		"PageCount": len(webpages),
	}, h.cfg))
}
