package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterName is the instrumentation scope of the application's instruments.
const MeterName = "launchpad"

// Provider bundles a Prometheus registry with an OpenTelemetry meter provider
// exporting into it. Each Provider owns its registry, so several can coexist.
type Provider struct {
	registry      *prometheus.Registry
	meterProvider *sdkmetric.MeterProvider
}

// NewProvider creates a registry carrying the Go runtime and process
// collectors and an otel meter provider backed by it.
func NewProvider() (*Provider, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return &Provider{
		registry:      reg,
		meterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)),
	}, nil
}

// Meter returns the application meter.
func (p *Provider) Meter() metric.Meter {
	return p.meterProvider.Meter(MeterName)
}

// MeterProvider exposes the underlying otel meter provider.
func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.meterProvider
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}
