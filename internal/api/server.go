// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the landing page.
package api

import (
	_ "embed"
	"fmt"
	"launchpad/internal/api/handler/contacthandler"
	"launchpad/internal/config"
	"launchpad/internal/contact"
	"launchpad/internal/web"
	"launchpad/internal/web/content"
	"launchpad/pkg/controller"
	"launchpad/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/swaggest/swgui/v5emb"
)

// contactSpec contains the embedded OpenAPI specification of the contact API.
//
//go:embed specs/contact.yaml
var contactSpec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via controller.WithTimeout for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes limits the size of a contact request body.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Pprof mounts the profiling handlers under /debug/pprof/.
	Pprof bool
	// CORSOrigin is the origin allowed to call the contact API.
	CORSOrigin string
	// Site is the copy rendered on the landing page.
	Site content.Site
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		Pprof:             cfg.HTTP.Pprof,
		CORSOrigin:        cfg.HTTP.CORSOrigin,
		Site: content.Site{
			Brand:       cfg.Site.Brand,
			Product:     cfg.Site.Product,
			Title:       cfg.Site.Title,
			Description: cfg.Site.Description,
		},
	}
}

type Deps struct {
	Contact contact.Service
	Metrics *metrics.Provider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - the landing page, its static assets and a health check
// - the contact API behind CORS
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI spec and Swagger UI
// - pprof endpoints for profiling, when enabled
// It also wraps the router with panic recovery and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// NewHandler builds the router served by NewServer.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	if deps.Metrics == nil {
		p, err := metrics.NewProvider()
		if err != nil {
			return nil, fmt.Errorf("could not create metrics provider: %w", err)
		}
		deps.Metrics = p
	}
	if deps.Contact == nil {
		m, err := metrics.NewContact(deps.Metrics.Meter())
		if err != nil {
			return nil, fmt.Errorf("could not create contact metrics: %w", err)
		}
		deps.Contact = contact.New(nil, m)
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// landing page
	pages := web.NewPages(opts.Site)
	r.Get("/", pages.LandingPage)
	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))
	r.Get("/health", web.Health)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, deps.Metrics.Handler())

	// contact specs file
	r.Get("/specs/contact.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(contactSpec)
	})
	// contact api swagger playground
	r.Handle("/docs/*", v5emb.New(
		opts.Site.WithDefaults().Brand+" Contact API",
		"/specs/contact.yaml",
		"/docs/",
	))

	// contact api
	contactHandler := contacthandler.New(deps.Contact, opts.MaxBodyBytes)
	r.Route("/api", func(r chi.Router) {
		r.Use(controller.WithCORS(opts.CORSOrigin))
		r.Post("/contact", contactHandler.Submit)
	})

	// pprof
	if opts.Pprof {
		r.Mount(controller.PprofPrefix, controller.Pprof())
	}

	// logger
	handler := controller.WithLogger(r)

	if opts.RequestTimeout <= 0 {
		return handler, nil
	}

	return controller.WithTimeout(handler, opts.RequestTimeout), nil
}
