package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"searchportal/internal/fetcher"
	"searchportal/internal/models"
	"searchportal/internal/store"
	"searchportal/internal/validation"
)

// PageFetcher downloads a remote page for indexing.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*models.WebpageInput, error)
}

// WebpageHandler handles webpage listing and indexing via JSON API.
type WebpageHandler struct {
	store   *store.Store
	fetcher PageFetcher
}

// NewWebpageHandler creates a new API webpage handler.
func NewWebpageHandler(s *store.Store, f PageFetcher) *WebpageHandler {
	return &WebpageHandler{store: s, fetcher: f}
}

// List returns every stored webpage in insertion order.
func (h *WebpageHandler) List(c fiber.Ctx) error {
	webpages, err := h.store.ListWebpages(c.Context())
	if err != nil {
		slog.Error("failed to list webpages", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to get webpages")
	}
	return jsonData(c, fiber.StatusOK, webpages)
}

// Get returns a single webpage by ID.
func (h *WebpageHandler) Get(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return jsonError(c, fiber.StatusBadRequest, "invalid webpage id")
	}

	webpage, err := h.store.GetWebpage(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrWebpageNotFound) {
			return jsonError(c, fiber.StatusNotFound, "webpage not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch webpage")
	}

	return jsonData(c, fiber.StatusOK, webpage)
}

// Create indexes a submitted webpage.
func (h *WebpageHandler) Create(c fiber.Ctx) error {
	var input models.WebpageInput
	if err := json.Unmarshal(c.Body(), &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	return h.index(c, input)
}

// Fetch downloads the page at the submitted url and indexes it.
func (h *WebpageHandler) Fetch(c fiber.Ctx) error {
	if h.fetcher == nil {
		return jsonError(c, fiber.StatusNotFound, "fetching is disabled")
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if valid, msg := validation.ValidateURL(body.URL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if _, err := h.store.GetWebpageByURL(c.Context(), body.URL); err == nil {
		return jsonError(c, fiber.StatusConflict, store.ErrDuplicateURL.Error())
	}

	input, err := h.fetcher.Fetch(c.Context(), body.URL)
	if err != nil {
		switch {
		case errors.Is(err, fetcher.ErrBlockedURL):
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, fetcher.ErrFetchFailed):
			return jsonError(c, fiber.StatusBadGateway, err.Error())
		}
		slog.Error("failed to fetch webpage", "url", body.URL, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch webpage")
	}

	return h.index(c, *input)
}

// MethodNotAllowed rejects unsupported methods on the webpage collection.
func (h *WebpageHandler) MethodNotAllowed(c fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, "GET, POST")
	return jsonError(c, fiber.StatusMethodNotAllowed, "method not allowed")
}

func (h *WebpageHandler) index(c fiber.Ctx, input models.WebpageInput) error {
	if err := validation.ValidateWebpageInput(input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	webpage, err := h.store.CreateWebpageIfAbsent(c.Context(), input)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateURL) {
			return jsonError(c, fiber.StatusConflict, err.Error())
		}
		slog.Error("failed to create webpage", "url", input.URL, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to create webpage")
	}

	slog.Info("webpage indexed", "id", webpage.ID, "url", webpage.URL)
	return jsonData(c, fiber.StatusCreated, webpage)
}
