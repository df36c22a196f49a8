package main

import (
	"log"
	"time"

	"law_site_go/config"
	"law_site_go/handlers"
	"law_site_go/middleware"
	"law_site_go/services/cms"
	"law_site_go/services/i18n"
	"law_site_go/templates"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Load translations
	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// CMS client: the only system of record for site content
	client := cms.New(cfg.CMSBaseURL, cfg.CMSAPIToken, cfg.CMSTimeout)

	h := handlers.New(cfg, client)

	// Create Echo instance
	e := echo.New()

	renderer, err := templates.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	e.Renderer = renderer

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.Locale(cfg))

	// Static files
	e.Static("/static", "static")

	// Pages
	e.GET("/", h.HomeHandler)
	e.GET("/services", h.ServicesPageHandler)
	e.GET("/services/:slug", h.ServiceDetailHandler)
	e.GET("/team", h.TeamPageHandler)
	e.GET("/blogs", h.BlogsPageHandler)
	e.GET("/blogs/:slug", h.BlogDetailHandler)
	e.GET("/contact", h.ContactPageHandler)
	e.GET("/search", h.SearchPageHandler)
	e.GET("/sitemap.xml", h.SitemapHandler)
	e.GET("/robots.txt", h.RobotsHandler)
	e.GET("/health", h.HealthHandler)
	// free-form CMS pages (about, privacy, ...); must stay last so the
	// static routes above take precedence
	e.GET("/:slug", h.PageHandler)

	// Content API
	api := e.Group("/api")
	{
		api.GET("/services", h.GetServicesHandler)
		api.GET("/services/:slug", h.GetServiceHandler)
		api.GET("/team", h.GetTeamHandler)
		api.GET("/team/:id", h.GetTeamMemberHandler)
		api.GET("/testimonials", h.GetTestimonialsHandler)
		api.GET("/clients", h.GetClientsHandler)
		api.GET("/blogs", h.GetBlogsHandler)
		api.GET("/blogs/:slug", h.GetBlogHandler)
		api.GET("/search", h.SearchHandler)
	}

	// Lead capture, rate limited per IP
	formLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})
	api.POST("/newsletter", h.SubscribeHandler, formLimiter.Middleware())
	api.POST("/contact", h.ContactHandler, formLimiter.Middleware())
	api.POST("/appointments", h.AppointmentHandler, formLimiter.Middleware())

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
