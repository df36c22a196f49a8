package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"law_site_go/config"
	"law_site_go/services/cms"
)

func testLeadConfig() *config.Config {
	return &config.Config{
		EmailTestMode: true,
		EmailFrom:     "no-reply@example.com",
		EmailFromName: "Test Firm",
		ContactInbox:  "inbox@example.com",
	}
}

// leadFixture simulates the subscriber, contact and appointment collections
// and counts POSTs so tests can assert on short-circuit behavior.
func leadFixture(existing map[string]bool, posts *int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodPost {
			if posts != nil {
				atomic.AddInt64(posts, 1)
			}
			var payload map[string]map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"id": 1, "attributes": payload["data"]},
			})
			return
		}

		email := r.URL.Query().Get("filters[email][$eq]")
		if existing[email] {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []map[string]interface{}{{"id": 1, "attributes": map[string]string{"email": email}}},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
}

func TestSubscribe(t *testing.T) {
	t.Run("New email is created", func(t *testing.T) {
		var posts int64
		server := leadFixture(map[string]bool{}, &posts)
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())
		sub, err := svc.Subscribe(context.Background(), "New.Reader@Example.COM")
		require.NoError(t, err)
		require.NotNil(t, sub)
		// normalized before sending
		assert.Equal(t, "new.reader@example.com", sub.Email)
		assert.Equal(t, int64(1), atomic.LoadInt64(&posts))
	})

	t.Run("Duplicate short-circuits without a create call", func(t *testing.T) {
		var posts int64
		server := leadFixture(map[string]bool{"taken@example.com": true}, &posts)
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())
		sub, err := svc.Subscribe(context.Background(), "taken@example.com")
		assert.Nil(t, sub)
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
		assert.Equal(t, int64(0), atomic.LoadInt64(&posts))
	})

	t.Run("Invalid email fails before any network call", func(t *testing.T) {
		var hits int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&hits, 1)
		}))
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())
		for _, email := range []string{"", "not-an-email", "missing@tld", "two@@example.com", "spa ced@example.com"} {
			_, err := svc.Subscribe(context.Background(), email)
			assert.True(t, IsValidationError(err), "expected validation error for %q", email)
		}
		assert.Equal(t, int64(0), atomic.LoadInt64(&hits))
	})

	t.Run("Pre-check failure surfaces as request error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())
		_, err := svc.Subscribe(context.Background(), "reader@example.com")
		assert.True(t, cms.IsRequestError(err))
	})
}

func TestSubmitContact(t *testing.T) {
	valid := ContactForm{
		Name:    "Dana Cole",
		Email:   "dana@example.com",
		Phone:   "+1 555 0100",
		Service: "Corporate Law",
		Message: "I need advice on a shareholder agreement.",
	}

	t.Run("Valid submission is recorded", func(t *testing.T) {
		var posts int64
		server := leadFixture(nil, &posts)
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())
		require.NoError(t, svc.SubmitContact(context.Background(), valid))
		assert.Equal(t, int64(1), atomic.LoadInt64(&posts))
	})

	t.Run("Missing fields are rejected locally", func(t *testing.T) {
		var hits int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&hits, 1)
		}))
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())

		cases := map[string]ContactForm{
			"no name":    {Email: valid.Email, Message: valid.Message},
			"no email":   {Name: valid.Name, Message: valid.Message},
			"bad email":  {Name: valid.Name, Email: "nope", Message: valid.Message},
			"no message": {Name: valid.Name, Email: valid.Email},
		}
		for label, form := range cases {
			err := svc.SubmitContact(context.Background(), form)
			assert.True(t, IsValidationError(err), label)
		}
		assert.Equal(t, int64(0), atomic.LoadInt64(&hits))
	})

	t.Run("Storage failure is returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())
		err := svc.SubmitContact(context.Background(), valid)
		assert.True(t, cms.IsRequestError(err))
	})
}

func TestBookAppointment(t *testing.T) {
	valid := AppointmentForm{
		Name:    "Dana Cole",
		Email:   "dana@example.com",
		Phone:   "+1 555 0100",
		Service: "Family Law",
		Date:    "2026-09-15",
		Time:    "10:30",
	}

	t.Run("Valid booking is recorded", func(t *testing.T) {
		var posts int64
		server := leadFixture(nil, &posts)
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())
		require.NoError(t, svc.BookAppointment(context.Background(), valid, "en"))
		assert.Equal(t, int64(1), atomic.LoadInt64(&posts))
	})

	t.Run("Required fields", func(t *testing.T) {
		svc := NewLeadService(cms.New("http://127.0.0.1:0", "", time.Second), testLeadConfig())

		missing := []func(f *AppointmentForm){
			func(f *AppointmentForm) { f.Name = "" },
			func(f *AppointmentForm) { f.Email = "" },
			func(f *AppointmentForm) { f.Service = "" },
			func(f *AppointmentForm) { f.Date = "" },
			func(f *AppointmentForm) { f.Time = "" },
		}
		for i, clear := range missing {
			form := valid
			clear(&form)
			err := svc.BookAppointment(context.Background(), form, "en")
			assert.True(t, IsValidationError(err), "case %d", i)
		}
	})

	t.Run("Malformed date is rejected", func(t *testing.T) {
		svc := NewLeadService(cms.New("http://127.0.0.1:0", "", time.Second), testLeadConfig())
		form := valid
		form.Date = "15/09/2026"
		err := svc.BookAppointment(context.Background(), form, "en")
		assert.True(t, IsValidationError(err))
	})

	t.Run("Optional message may be empty", func(t *testing.T) {
		server := leadFixture(nil, nil)
		defer server.Close()

		svc := NewLeadService(cms.New(server.URL, "", time.Second), testLeadConfig())
		form := valid
		form.Message = ""
		assert.NoError(t, svc.BookAppointment(context.Background(), form, "ar"))
	})
}
