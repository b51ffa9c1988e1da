package web_test

import (
	"html"
	"io"
	"launchpad/internal/web"
	"launchpad/internal/web/content"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func render(t *testing.T, site content.Site) string {
	t.Helper()

	var b strings.Builder
	p := web.NewPages(site).WithClock(func() time.Time {
		return time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC)
	})
	require.NoError(t, p.Render(&b))

	return b.String()
}

func TestLanding_Sections(t *testing.T) {
	page := render(t, content.Site{})

	require.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	for _, id := range []string{"home", "about", "features", "pricing", "faq", "contact"} {
		require.Contains(t, page, `id="`+id+`"`)
	}
	for _, item := range content.NavItems {
		require.Contains(t, page, `href="`+item.Link+`"`)
		require.Contains(t, page, ">"+item.Name+"<")
	}
	require.Contains(t, page, "Get early access")
	require.Contains(t, page, `id="nav-toggle"`)
	require.Contains(t, page, `aria-label="Back to top"`)
	require.Contains(t, page, "© 2031 LaunchPad. All rights reserved.")
}

func TestLanding_Hero(t *testing.T) {
	page := render(t, content.Site{})

	require.Contains(t, page, "Introducing")
	require.Contains(t, page, "KNOX AI")
	require.Contains(t, page, "Get Early Access")
	require.Contains(t, page, "Watch Demo")
	require.Contains(t, page, html.EscapeString(content.EarlyAccessToast(content.DefaultSite).Title))
	require.Contains(t, page, html.EscapeString(content.DemoToast(content.DefaultSite).Description))
}

func TestLanding_Content(t *testing.T) {
	page := render(t, content.Site{})

	for i, f := range content.Features {
		require.Contains(t, page, html.EscapeString(f.Title))
		require.Contains(t, page, html.EscapeString(f.Description))
		require.Contains(t, page, `<div class="feature-index">`+string(rune('1'+i))+`</div>`)
	}
	for _, p := range content.PricingPlans {
		require.Contains(t, page, ">"+p.Name+"<")
		require.Contains(t, page, ">"+p.Price+"<")
		for _, f := range p.Features {
			require.Contains(t, page, html.EscapeString(f))
		}
	}
	require.Equal(t, 1, strings.Count(page, ">Popular<"))
	require.Equal(t, len(content.PricingPlans), strings.Count(page, "/month"))

	require.Equal(t, len(content.FAQ), strings.Count(page, "<details"))
	for _, q := range content.FAQ {
		require.Contains(t, page, html.EscapeString(q.Question))
		require.Contains(t, page, html.EscapeString(q.Answer))
	}
}

func TestLanding_ContactForm(t *testing.T) {
	page := render(t, content.Site{})

	require.Contains(t, page, `id="contact-form"`)
	require.Contains(t, page, `data-endpoint="/api/contact"`)
	for _, name := range []string{"name", "email", "message"} {
		require.Contains(t, page, `name="`+name+`"`)
	}
	require.Contains(t, page, "Send message")
}

func TestLanding_SiteOverrides(t *testing.T) {
	page := render(t, content.Site{Brand: "Acme", Product: "ROCKET", Title: "Acme Rocket"})

	require.Contains(t, page, "<title>Acme Rocket</title>")
	require.Contains(t, page, "About Acme")
	require.Contains(t, page, "ROCKET")
	require.Contains(t, page, "© 2031 Acme.")
	require.Contains(t, page, html.EscapeString(content.DefaultSite.Description))
}

func TestLandingPage_Handler(t *testing.T) {
	rec := httptest.NewRecorder()
	web.NewPages(content.Site{}).LandingPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `id="pricing"`)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	web.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStatic(t *testing.T) {
	srv := httptest.NewServer(http.StripPrefix("/static/", web.Static()))
	defer srv.Close()

	for path, want := range map[string]string{
		"/static/styles.css":       ".toast",
		"/static/js/site.js":       "contact-form",
		"/static/img/founders.svg": "<svg",
	} {
		res, err := http.Get(srv.URL + path) //nolint: noctx
		require.NoError(t, err)
		body, err := io.ReadAll(res.Body)
		_ = res.Body.Close()
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode, path)
		require.Contains(t, string(body), want, path)
	}

	res, err := http.Get(srv.URL + "/static/missing.css") //nolint: noctx
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
