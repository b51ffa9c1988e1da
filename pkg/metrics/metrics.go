// Package metrics declares the OpenTelemetry instruments recorded by the
// contact flow. The instruments are exported through whichever meter provider
// the caller wires in (Prometheus in the HTTP server).
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Submission outcomes used as the "outcome" attribute.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// Contact groups the instruments of the contact flow. A nil *Contact is valid
// and records nothing.
type Contact struct {
	submissions metric.Int64Counter
	delivery    metric.Float64Histogram
}

// NewContact creates the contact instruments on the given meter.
func NewContact(meter metric.Meter) (*Contact, error) {
	submissions, err := meter.Int64Counter("contact.submissions",
		metric.WithDescription("Contact form submissions by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create submissions counter: %w", err)
	}

	delivery, err := meter.Float64Histogram("contact.delivery.duration",
		metric.WithDescription("Time spent delivering an inquiry to a notification channel."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create delivery histogram: %w", err)
	}

	return &Contact{
		submissions: submissions,
		delivery:    delivery,
	}, nil
}

// Submission counts one handled submission with the given outcome.
func (c *Contact) Submission(ctx context.Context, outcome string) {
	if c == nil {
		return
	}

	c.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Delivery records how long delivering to channel took and whether it failed.
func (c *Contact) Delivery(ctx context.Context, channel string, took time.Duration, err error) {
	if c == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	c.delivery.Record(ctx, took.Seconds(), metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("status", status),
	))
}
