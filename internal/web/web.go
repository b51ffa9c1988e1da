// Package web serves the server-rendered landing page and its static assets.
package web

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"launchpad/internal/web/components"
	"launchpad/internal/web/content"
	"launchpad/pkg/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

// ContactEndpoint is where the contact form posts inquiries.
const ContactEndpoint = "/api/contact"

//go:embed static
var staticFS embed.FS

// Pages renders the landing page for one site configuration.
type Pages struct {
	site content.Site
	now  func() time.Time
}

func NewPages(site content.Site) *Pages {
	return &Pages{
		site: site.WithDefaults(),
		now:  time.Now,
	}
}

// WithClock replaces the clock used for the footer year.
func (p *Pages) WithClock(now func() time.Time) *Pages {
	p.now = now

	return p
}

// Landing builds the full landing page.
func (p *Pages) Landing() g.Node {
	return components.Layout(p.site,
		components.Navbar(p.site, content.NavItems),
		components.ScrollTop(),
		g.El("main",
			components.Hero(p.site),
			components.About(p.site, content.About),
			components.FeatureGrid(content.Features),
			components.Pricing(content.PricingPlans),
			components.FAQ(p.site, content.FAQ),
			components.Contact(ContactEndpoint),
		),
		components.PageFooter(p.site, p.now().Year()),
	)
}

// Render writes the landing page to w.
func (p *Pages) Render(w io.Writer) error {
	if err := p.Landing().Render(w); err != nil {
		return fmt.Errorf("could not render landing page: %w", err)
	}

	return nil
}

// LandingPage handles GET /.
func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.Render(w); err != nil {
		logger.Error(r.Context(), "could not write landing page", zap.Error(err))
	}
}

// Health handles GET /health.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Static returns a handler serving the embedded assets. It expects the
// "/static/" prefix to be stripped already.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return http.FileServer(http.FS(sub))
}
