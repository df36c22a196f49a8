package handlers

import (
	"net/http"

	"law_site_go/middleware"

	"github.com/labstack/echo/v4"
)

// JSON content API. Every endpoint is a fresh fetch against the CMS; a
// transport failure surfaces as 502 with a localized message.

// GetServicesHandler handles GET /api/services
func (h *Handler) GetServicesHandler(c echo.Context) error {
	items, err := h.CMS.GetServices(c.Request().Context(), middleware.GetLocale(c))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetServiceHandler handles GET /api/services/:slug
func (h *Handler) GetServiceHandler(c echo.Context) error {
	svc, err := h.CMS.GetServiceBySlug(c.Request().Context(), c.Param("slug"), middleware.GetLocale(c))
	if err != nil {
		return apiError(c, err)
	}
	if svc == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Service not found")
	}
	return c.JSON(http.StatusOK, svc)
}

// GetTeamHandler handles GET /api/team
func (h *Handler) GetTeamHandler(c echo.Context) error {
	items, err := h.CMS.GetTeamMembers(c.Request().Context(), middleware.GetLocale(c))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetTeamMemberHandler handles GET /api/team/:id
func (h *Handler) GetTeamMemberHandler(c echo.Context) error {
	member, err := h.CMS.GetTeamMemberByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apiError(c, err)
	}
	if member == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Team member not found")
	}
	return c.JSON(http.StatusOK, member)
}

// GetTestimonialsHandler handles GET /api/testimonials
func (h *Handler) GetTestimonialsHandler(c echo.Context) error {
	items, err := h.CMS.GetTestimonials(c.Request().Context())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetClientsHandler handles GET /api/clients
func (h *Handler) GetClientsHandler(c echo.Context) error {
	items, err := h.CMS.GetClients(c.Request().Context())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetBlogsHandler handles GET /api/blogs
func (h *Handler) GetBlogsHandler(c echo.Context) error {
	items, err := h.CMS.GetBlogPosts(c.Request().Context(), middleware.GetLocale(c))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetBlogHandler handles GET /api/blogs/:slug
func (h *Handler) GetBlogHandler(c echo.Context) error {
	post, err := h.CMS.GetBlogPostBySlug(c.Request().Context(), c.Param("slug"), middleware.GetLocale(c))
	if err != nil {
		return apiError(c, err)
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog post not found")
	}
	return c.JSON(http.StatusOK, post)
}

// HealthHandler handles GET /health; reports CMS reachability.
func (h *Handler) HealthHandler(c echo.Context) error {
	status := map[string]interface{}{
		"status": "ok",
		"cms":    h.CMS.Ping(c.Request().Context()),
	}
	return c.JSON(http.StatusOK, status)
}
