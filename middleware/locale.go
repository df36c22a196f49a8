package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"law_site_go/config"
	"law_site_go/services/i18n"

	"github.com/labstack/echo/v4"
)

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Configured default
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.QueryParam("lang")
			if lang != "" {
				if !i18n.IsSupported(lang) {
					lang = cfg.DefaultLocale
				}
				setLanguageCookie(c, cfg, lang)
			} else {
				cookie, err := c.Cookie("lang")
				if err == nil && i18n.IsSupported(cookie.Value) {
					lang = cookie.Value
				}
			}

			if lang == "" {
				accept := c.Request().Header.Get("Accept-Language")
				if strings.Contains(accept, "ar") {
					lang = "ar"
				} else {
					lang = cfg.DefaultLocale
				}
			}

			// Stored in both echo context and request context so templates
			// and services see the same value.
			c.Set("locale", lang)
			ctx := context.WithValue(c.Request().Context(), i18n.LocaleContextKey, lang)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func setLanguageCookie(c echo.Context, cfg *config.Config, lang string) {
	cookie := new(http.Cookie)
	cookie.Name = "lang"
	cookie.Value = lang
	cookie.Expires = time.Now().Add(24 * 365 * time.Hour) // 1 year
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	if cfg.Environment == "production" {
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return "en"
}
