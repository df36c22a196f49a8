package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"law_site_go/config"
	"law_site_go/services/cms"
	"law_site_go/services/i18n"
	"law_site_go/templates"
)

var i18nOnce sync.Once

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	i18nOnce.Do(func() {
		if err := i18n.Load(); err != nil {
			t.Fatalf("failed to load translations: %v", err)
		}
	})

	e := echo.New()
	renderer, err := templates.New()
	require.NoError(t, err)
	e.Renderer = renderer
	return e
}

func newTestHandler(cmsURL string) *Handler {
	cfg := &config.Config{
		AppURL:        "http://example.test",
		DefaultLocale: "en",
		EmailTestMode: true,
		ContactInbox:  "inbox@example.com",
	}
	return New(cfg, cms.New(cmsURL, "", time.Second))
}

// contentFixture serves a minimal content set for every collection.
func contentFixture() *httptest.Server {
	collection := func(items ...map[string]interface{}) map[string]interface{} {
		data := make([]map[string]interface{}, 0, len(items))
		for i, attrs := range items {
			data = append(data, map[string]interface{}{"id": i + 1, "attributes": attrs})
		}
		return map[string]interface{}{"data": data}
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"id": 1, "attributes": map[string]interface{}{}},
			})
			return
		}

		switch r.URL.Path {
		case "/api/services":
			if slug := r.URL.Query().Get("filters[slug][$eq]"); slug != "" && slug != "corporate-law" {
				json.NewEncoder(w).Encode(collection())
				return
			}
			json.NewEncoder(w).Encode(collection(map[string]interface{}{
				"title":       "Corporate Law",
				"description": "Governance and compliance",
				"slug":        "corporate-law",
				"content":     "<p>Full description</p>",
			}))
		case "/api/team-members":
			json.NewEncoder(w).Encode(collection(map[string]interface{}{
				"name": "Sarah Williams",
				"role": "Managing Partner",
			}))
		case "/api/team-members/1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"id":         1,
					"attributes": map[string]interface{}{"name": "Sarah Williams", "role": "Managing Partner"},
				},
			})
		case "/api/testimonials":
			json.NewEncoder(w).Encode(collection(map[string]interface{}{
				"name":    "Dana Cole",
				"content": "Excellent counsel.",
				"rating":  5,
			}))
		case "/api/clients":
			json.NewEncoder(w).Encode(collection(map[string]interface{}{
				"name":     "Acme Holdings",
				"industry": "Manufacturing",
			}))
		case "/api/blogs":
			if slug := r.URL.Query().Get("filters[slug][$eq]"); slug != "" && slug != "family-trusts" {
				json.NewEncoder(w).Encode(collection())
				return
			}
			json.NewEncoder(w).Encode(collection(map[string]interface{}{
				"title":       "Understanding Family Trusts",
				"slug":        "family-trusts",
				"excerpt":     "Estate planning basics",
				"publishedAt": "2026-08-01T10:00:00.000Z",
			}))
		case "/api/pages":
			if slug := r.URL.Query().Get("filters[slug][$eq]"); slug != "" && slug != "about" {
				json.NewEncoder(w).Encode(collection())
				return
			}
			json.NewEncoder(w).Encode(collection(map[string]interface{}{
				"title":   "About the Firm",
				"slug":    "about",
				"content": "<p>Founded in 1998.</p>",
			}))
		case "/api/subscribers":
			json.NewEncoder(w).Encode(collection())
		default:
			http.NotFound(w, r)
		}
	}))
}

// downFixture answers 503 to everything.
func downFixture() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
}
