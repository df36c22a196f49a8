package handlers

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapHandler generates a dynamic XML sitemap from the static routes
// plus the CMS service and blog slugs.
func (h *Handler) SitemapHandler(c echo.Context) error {
	baseURL := h.Cfg.AppURL

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/services", ChangeFreq: "weekly", Priority: 0.9},
		{Loc: baseURL + "/team", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/blogs", ChangeFreq: "daily", Priority: 0.9},
		{Loc: baseURL + "/contact", ChangeFreq: "monthly", Priority: 0.8},
	}

	ctx := c.Request().Context()

	// A CMS failure degrades to the static routes rather than a 500.
	if services, err := h.CMS.GetServices(ctx, ""); err != nil {
		c.Logger().Error("Failed to fetch services for sitemap: ", err)
	} else {
		for _, svc := range services {
			if svc.Slug == "" {
				continue
			}
			urls = append(urls, SitemapURL{
				Loc:        baseURL + "/services/" + svc.Slug,
				ChangeFreq: "monthly",
				Priority:   0.7,
			})
		}
	}

	if pages, err := h.CMS.GetPages(ctx); err != nil {
		c.Logger().Error("Failed to fetch pages for sitemap: ", err)
	} else {
		for _, page := range pages {
			if page.Slug == "" {
				continue
			}
			urls = append(urls, SitemapURL{
				Loc:        baseURL + "/" + page.Slug,
				ChangeFreq: "yearly",
				Priority:   0.5,
			})
		}
	}

	if posts, err := h.CMS.GetBlogPosts(ctx, ""); err != nil {
		c.Logger().Error("Failed to fetch blog posts for sitemap: ", err)
	} else {
		for _, post := range posts {
			if post.Slug == "" {
				continue
			}
			entry := SitemapURL{
				Loc:        baseURL + "/blogs/" + post.Slug,
				ChangeFreq: "monthly",
				Priority:   0.6,
			}
			if !post.PublishedAt.IsZero() {
				entry.LastMod = post.PublishedAt.Format(time.RFC3339)
			}
			urls = append(urls, entry)
		}
	}

	sitemap := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	out, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate sitemap")
	}

	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
}

// RobotsHandler serves robots.txt.
func (h *Handler) RobotsHandler(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /api/\nDisallow: /search\n\nSitemap: " + h.Cfg.AppURL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}
