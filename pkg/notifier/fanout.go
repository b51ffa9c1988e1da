package notifier

import (
	"context"
	"fmt"
	"launchpad/pkg/domain"
	"launchpad/pkg/logger"
	"launchpad/pkg/metrics"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Channel is a named Notifier. The name is used in logs and metric attributes.
type Channel struct {
	Name     string
	Notifier Notifier
}

// Fanout delivers every inquiry to all of its channels, one after another.
//
// Delivery succeeds when at least one channel accepted the inquiry; failures of
// the other channels are only logged. When every channel fails, the combined
// error is returned.
type Fanout struct {
	channels []Channel
	metrics  *metrics.Contact
}

var _ Notifier = (*Fanout)(nil)

// NewFanout creates a Fanout over channels. m may be nil.
func NewFanout(m *metrics.Contact, channels ...Channel) *Fanout {
	return &Fanout{
		channels: channels,
		metrics:  m,
	}
}

// Names returns the channel names in delivery order.
func (f *Fanout) Names() []string {
	names := make([]string, 0, len(f.channels))
	for _, ch := range f.channels {
		names = append(names, ch.Name)
	}

	return names
}

// Deliver implements Notifier. Without channels it is a no-op.
func (f *Fanout) Deliver(ctx context.Context, inquiry domain.Inquiry) error {
	var errs error
	delivered := 0

	for _, ch := range f.channels {
		start := time.Now()
		err := ch.Notifier.Deliver(ctx, inquiry)
		f.metrics.Delivery(ctx, ch.Name, time.Since(start), err)

		if err != nil {
			logger.Warn(ctx, "could not deliver inquiry", zap.String("channel", ch.Name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", ch.Name, err))

			continue
		}

		delivered++
		logger.Debug(ctx, "inquiry delivered", zap.String("channel", ch.Name))
	}

	if delivered == 0 && errs != nil {
		return errs
	}

	return nil
}
