package handlers

import (
	"net/http"
	"sync"

	"law_site_go/middleware"
	"law_site_go/models"
	"law_site_go/services/i18n"

	"github.com/labstack/echo/v4"
)

// Server-rendered pages. Each data-bearing block degrades independently:
// a failed fetch renders the error state for that section while the rest of
// the page stays populated.

// HomeHandler renders the landing page. The five sections are fetched
// concurrently; the page waits for the slowest, not the sum.
func (h *Handler) HomeHandler(c echo.Context) error {
	ctx := c.Request().Context()
	lang := middleware.GetLocale(c)

	var (
		wg                                               sync.WaitGroup
		svcSec, teamSec, testimonialSec, clientSec, blogSec section
	)
	wg.Add(5)

	go func() {
		defer wg.Done()
		items, err := h.CMS.GetServices(ctx, lang)
		svcSec = newSection(items, err)
	}()
	go func() {
		defer wg.Done()
		items, err := h.CMS.GetTeamMembers(ctx, lang)
		teamSec = newSection(items, err)
	}()
	go func() {
		defer wg.Done()
		items, err := h.CMS.GetTestimonials(ctx)
		testimonialSec = newSection(items, err)
	}()
	go func() {
		defer wg.Done()
		items, err := h.CMS.GetClients(ctx)
		clientSec = newSection(items, err)
	}()
	go func() {
		defer wg.Done()
		items, err := h.CMS.GetBlogPosts(ctx, lang)
		if err == nil && len(items) > 3 {
			items = items[:3]
		}
		blogSec = newSection(items, err)
	}()
	wg.Wait()

	data := h.pageData(c, models.DefaultSEO(
		"Al Wakeel Law Firm",
		"Trusted legal counsel in corporate, commercial and family law.",
	).WithCanonical(h.Cfg.AppURL+"/"))
	data["Services"] = svcSec
	data["Team"] = teamSec
	data["Testimonials"] = testimonialSec
	data["Clients"] = clientSec
	data["Blogs"] = blogSec

	return c.Render(http.StatusOK, "home", data)
}

func newSection(items interface{}, err error) section {
	if err != nil {
		return section{Error: err.Error()}
	}
	return section{Items: items}
}

// ServicesPageHandler renders the services index.
func (h *Handler) ServicesPageHandler(c echo.Context) error {
	items, err := h.CMS.GetServices(c.Request().Context(), middleware.GetLocale(c))
	data := h.pageData(c, models.DefaultSEO(
		"Our Services | Al Wakeel Law Firm",
		"Practice areas and legal services offered by the firm.",
	).WithCanonical(h.Cfg.AppURL+"/services"))
	data["Services"] = newSection(items, err)
	return c.Render(http.StatusOK, "services", data)
}

// ServiceDetailHandler renders one practice area by slug.
func (h *Handler) ServiceDetailHandler(c echo.Context) error {
	lang := middleware.GetLocale(c)
	svc, err := h.CMS.GetServiceBySlug(c.Request().Context(), c.Param("slug"), lang)
	if err != nil {
		return apiError(c, err)
	}
	if svc == nil {
		return h.renderNotFound(c, i18n.Translate(lang, "services.notFound"))
	}

	data := h.pageData(c, models.DefaultSEO(
		svc.Title+" | Al Wakeel Law Firm",
		svc.Description,
	).WithCanonical(h.Cfg.AppURL+"/services/"+svc.Slug))
	data["Service"] = svc
	return c.Render(http.StatusOK, "service_detail", data)
}

// TeamPageHandler renders the team page.
func (h *Handler) TeamPageHandler(c echo.Context) error {
	items, err := h.CMS.GetTeamMembers(c.Request().Context(), middleware.GetLocale(c))
	data := h.pageData(c, models.DefaultSEO(
		"Our Team | Al Wakeel Law Firm",
		"Meet the lawyers and staff of the firm.",
	).WithCanonical(h.Cfg.AppURL+"/team"))
	data["Team"] = newSection(items, err)
	return c.Render(http.StatusOK, "team", data)
}

// BlogsPageHandler renders the blog index.
func (h *Handler) BlogsPageHandler(c echo.Context) error {
	items, err := h.CMS.GetBlogPosts(c.Request().Context(), middleware.GetLocale(c))
	data := h.pageData(c, models.DefaultSEO(
		"Legal Insights | Al Wakeel Law Firm",
		"Articles and commentary from our lawyers.",
	).WithCanonical(h.Cfg.AppURL+"/blogs"))
	data["Blogs"] = newSection(items, err)
	return c.Render(http.StatusOK, "blogs", data)
}

// BlogDetailHandler renders one post by slug.
func (h *Handler) BlogDetailHandler(c echo.Context) error {
	lang := middleware.GetLocale(c)
	post, err := h.CMS.GetBlogPostBySlug(c.Request().Context(), c.Param("slug"), lang)
	if err != nil {
		return apiError(c, err)
	}
	if post == nil {
		return h.renderNotFound(c, i18n.Translate(lang, "blog.notFound"))
	}

	seo := models.DefaultSEO(post.Title+" | Al Wakeel Law Firm", post.Excerpt)
	seo.OGType = "article"
	if post.FeaturedImage != "" {
		seo.WithOGImage(post.FeaturedImage)
	}
	data := h.pageData(c, seo.WithCanonical(h.Cfg.AppURL+"/blogs/"+post.Slug))
	data["Post"] = post
	return c.Render(http.StatusOK, "blog_detail", data)
}

// ContactPageHandler renders the contact and booking forms. The service
// dropdown is fed from the CMS; a failed fetch leaves it empty rather than
// blocking the page.
func (h *Handler) ContactPageHandler(c echo.Context) error {
	items, err := h.CMS.GetServices(c.Request().Context(), middleware.GetLocale(c))
	data := h.pageData(c, models.DefaultSEO(
		"Contact Us | Al Wakeel Law Firm",
		"Get in touch or book a consultation.",
	).WithCanonical(h.Cfg.AppURL+"/contact"))
	data["Services"] = newSection(items, err)
	data["TurnstileSiteKey"] = h.Cfg.TurnstileSiteKey
	return c.Render(http.StatusOK, "contact", data)
}

// PageHandler renders a free-form CMS page (about, privacy, ...) by slug.
func (h *Handler) PageHandler(c echo.Context) error {
	lang := middleware.GetLocale(c)
	page, err := h.CMS.GetPageBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return apiError(c, err)
	}
	if page == nil {
		return h.renderNotFound(c, i18n.Translate(lang, "errors.pageNotFound"))
	}

	data := h.pageData(c, models.DefaultSEO(
		page.Title+" | Al Wakeel Law Firm", "",
	).WithCanonical(h.Cfg.AppURL+"/"+page.Slug))
	data["Page"] = page
	return c.Render(http.StatusOK, "page", data)
}

func (h *Handler) renderNotFound(c echo.Context, message string) error {
	seo := models.DefaultSEO("Not Found", "")
	seo.NoIndex = true
	data := h.pageData(c, seo)
	data["Message"] = message
	return c.Render(http.StatusNotFound, "not_found", data)
}
