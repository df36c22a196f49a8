package handlers

import (
	"net/http"

	"law_site_go/middleware"
	"law_site_go/services"
	"law_site_go/services/i18n"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Lead-capture POST endpoints. Each validates, verifies Turnstile when
// configured, and writes through the CMS client. A double-submit can create
// duplicate contact/appointment records; there is no idempotency key.

// verifyCaptcha checks the Turnstile token when a secret key is configured.
func (h *Handler) verifyCaptcha(c echo.Context, token string) error {
	if h.Cfg.TurnstileSecretKey == "" {
		return nil
	}
	ok, err := services.VerifyTurnstileToken(token, h.Cfg.TurnstileSecretKey, c.RealIP())
	if err != nil || !ok {
		lang := middleware.GetLocale(c)
		return echo.NewHTTPError(http.StatusBadRequest, i18n.Translate(lang, "errors.captcha"))
	}
	return nil
}

// SubscribeHandler handles POST /api/newsletter.
func (h *Handler) SubscribeHandler(c echo.Context) error {
	var req struct {
		Email          string `json:"email" form:"email"`
		TurnstileToken string `json:"cf-turnstile-response" form:"cf-turnstile-response"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.verifyCaptcha(c, req.TurnstileToken); err != nil {
		return err
	}

	sub, err := h.Leads.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return apiError(c, err)
	}

	lang := middleware.GetLocale(c)
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    i18n.Translate(lang, "newsletter.success"),
		"subscriber": sub,
	})
}

// ContactHandler handles POST /api/contact.
func (h *Handler) ContactHandler(c echo.Context) error {
	var req struct {
		services.ContactForm
		TurnstileToken string `json:"cf-turnstile-response" form:"cf-turnstile-response"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.verifyCaptcha(c, req.TurnstileToken); err != nil {
		return err
	}

	if err := h.Leads.SubmitContact(c.Request().Context(), req.ContactForm); err != nil {
		return apiError(c, err)
	}

	lang := middleware.GetLocale(c)
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   i18n.Translate(lang, "contact.success"),
		"reference": uuid.New().String(),
	})
}

// AppointmentHandler handles POST /api/appointments.
func (h *Handler) AppointmentHandler(c echo.Context) error {
	var req struct {
		services.AppointmentForm
		TurnstileToken string `json:"cf-turnstile-response" form:"cf-turnstile-response"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.verifyCaptcha(c, req.TurnstileToken); err != nil {
		return err
	}

	lang := middleware.GetLocale(c)
	if err := h.Leads.BookAppointment(c.Request().Context(), req.AppointmentForm, lang); err != nil {
		return apiError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   i18n.Translate(lang, "appointment.success"),
		"reference": uuid.New().String(),
	})
}
