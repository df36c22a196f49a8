package handlers

import (
	"errors"
	"net/http"

	"law_site_go/config"
	"law_site_go/middleware"
	"law_site_go/models"
	"law_site_go/services"
	"law_site_go/services/cms"
	"law_site_go/services/i18n"

	"github.com/labstack/echo/v4"
)

// Handler carries the application dependencies. It is constructed once at
// startup and passed to the router; no package-level singletons.
type Handler struct {
	Cfg    *config.Config
	CMS    *cms.Client
	Search *services.SearchService
	Leads  *services.LeadService
}

// New creates the handler set.
func New(cfg *config.Config, client *cms.Client) *Handler {
	return &Handler{
		Cfg:    cfg,
		CMS:    client,
		Search: services.NewSearchService(client),
		Leads:  services.NewLeadService(client, cfg),
	}
}

// section is one data block on a page; it renders three states: populated,
// empty, and error-with-retry. A fetch failure degrades to an empty list
// plus a user-visible message, never a crashed page.
type section struct {
	Items interface{}
	Error string
}

// pageData builds the common template payload.
func (h *Handler) pageData(c echo.Context, seo *models.SEO) map[string]interface{} {
	lang := middleware.GetLocale(c)
	seo.Locale = lang
	return map[string]interface{}{
		"Lang": lang,
		"Dir":  i18n.Dir(lang),
		"SEO":  seo,
	}
}

// apiError maps the error taxonomy onto HTTP statuses for JSON endpoints:
// 400 for client-side validation, 409 for the duplicate subscriber
// condition, 502 for upstream CMS failures.
func apiError(c echo.Context, err error) error {
	lang := middleware.GetLocale(c)
	switch {
	case services.IsValidationError(err):
		var ve *services.ValidationError
		errors.As(err, &ve)
		return echo.NewHTTPError(http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrAlreadySubscribed):
		return echo.NewHTTPError(http.StatusConflict, i18n.Translate(lang, "newsletter.duplicate"))
	case cms.IsRequestError(err):
		c.Logger().Error("CMS request failed: ", err)
		return echo.NewHTTPError(http.StatusBadGateway, i18n.Translate(lang, "errors.upstream"))
	default:
		c.Logger().Error("Unexpected error: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal error")
	}
}
