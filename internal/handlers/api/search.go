package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"searchportal/internal/search"
	"searchportal/internal/validation"
)

// SearchHandler serves ranked search results as JSON.
type SearchHandler struct {
	service         *search.Service
	defaultPageSize int
}

// NewSearchHandler creates a new API search handler. A defaultPageSize below
// one falls back to the validation default.
func NewSearchHandler(service *search.Service, defaultPageSize int) *SearchHandler {
	if defaultPageSize < 1 {
		defaultPageSize = validation.DefaultPageSize
	}
	return &SearchHandler{service: service, defaultPageSize: defaultPageSize}
}

// Search handles GET /api/search?q=&page=&pageSize=.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	params, err := validation.ParseSearchParams(
		c.Query("q"),
		c.Query("page"),
		c.Query("pageSize", strconv.Itoa(h.defaultPageSize)),
	)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidSearchParams) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return jsonError(c, fiber.StatusInternalServerError, "An error occurred while performing the search")
	}

	resp, err := h.service.Search(c.Context(), params)
	if err != nil {
		slog.Error("search failed", "query", params.Query, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "An error occurred while performing the search")
	}

	return jsonData(c, fiber.StatusOK, resp)
}
