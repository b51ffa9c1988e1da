// Package contact implements the contact-form use case: validate an inquiry
// and hand it to the configured notifier.
package contact

import (
	"context"
	"launchpad/pkg/domain"
	"launchpad/pkg/logger"
	"launchpad/pkg/metrics"
	"launchpad/pkg/notifier"
	"launchpad/pkg/serrors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// MissingFieldsMessage is the public message of a validation failure.
const MissingFieldsMessage = "Missing required fields"

const tracerName = "launchpad/internal/contact"

// service is the concrete implementation of the Service interface.
type service struct {
	notifier notifier.Notifier
	metrics  *metrics.Contact
	tracer   trace.Tracer
}

var _ Service = (*service)(nil)

// New creates a Service delivering through n. A nil n falls back to notifier.Nop
// and a nil m records no metrics.
func New(n notifier.Notifier, m *metrics.Contact) Service {
	if n == nil {
		n = notifier.Nop{}
	}

	return &service{
		notifier: n,
		metrics:  m,
		tracer:   otel.Tracer(tracerName),
	}
}

// Submit validates the inquiry and delivers it. A missing field yields an
// ErrBadRequest error; any delivery failure yields ErrInternal.
func (s *service) Submit(ctx context.Context, inquiry domain.Inquiry) error {
	ctx, span := s.tracer.Start(ctx, "contact.Submit")
	defer span.End()

	if missing := inquiry.MissingFields(); len(missing) > 0 {
		span.SetAttributes(attribute.String("contact.missing", strings.Join(missing, ",")))
		span.SetStatus(codes.Error, MissingFieldsMessage)
		s.metrics.Submission(ctx, metrics.OutcomeInvalid)
		logger.Debug(ctx, "rejected inquiry", zap.Strings("missing", missing))

		return serrors.With(serrors.ErrBadRequest, MissingFieldsMessage)
	}

	if err := s.notifier.Deliver(ctx, inquiry); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		s.metrics.Submission(ctx, metrics.OutcomeFailed)

		return serrors.Wrap(serrors.ErrInternal, err, "could not deliver inquiry")
	}

	s.metrics.Submission(ctx, metrics.OutcomeAccepted)

	return nil
}
