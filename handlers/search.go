package handlers

import (
	"net/http"
	"strings"

	"law_site_go/middleware"
	"law_site_go/models"

	"github.com/labstack/echo/v4"
)

// SearchHandler handles GET /api/search?q=keyword and returns the
// categorized bundle. A blank query returns the empty bundle without
// touching the CMS. Per-category failures are reported in the errors field
// alongside whatever partial results came back.
func (h *Handler) SearchHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	results := h.Search.Search(c.Request().Context(), query, middleware.GetLocale(c))

	if query != "" && results.Failed() {
		return echo.NewHTTPError(http.StatusBadGateway, "Search failed")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"query":   query,
		"count":   results.Count(),
		"results": results,
	})
}

// SearchPageHandler renders the dedicated search page for GET /search?q=.
func (h *Handler) SearchPageHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	results := h.Search.Search(c.Request().Context(), query, middleware.GetLocale(c))

	seo := models.DefaultSEO("Search | Al Wakeel Law Firm", "Search team members, services and articles.")
	seo.NoIndex = true
	data := h.pageData(c, seo)
	data["Query"] = query
	data["Results"] = results
	return c.Render(http.StatusOK, "search", data)
}
