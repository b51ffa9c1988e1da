// Package notifier forwards contact inquiries to external channels. The
// contact flow only depends on the Notifier interface, so concrete delivery
// mechanisms (email, chat) can be swapped without touching validation.
package notifier

import (
	"context"
	"launchpad/pkg/domain"
)

// Notifier delivers a validated inquiry to some external channel.
//
//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *
type Notifier interface {
	// Deliver forwards the inquiry. A non-nil error means the inquiry did not reach the channel.
	Deliver(ctx context.Context, inquiry domain.Inquiry) error
}

// Func adapts an ordinary function to the Notifier interface.
type Func func(ctx context.Context, inquiry domain.Inquiry) error

// Deliver calls f(ctx, inquiry).
func (f Func) Deliver(ctx context.Context, inquiry domain.Inquiry) error {
	return f(ctx, inquiry)
}
