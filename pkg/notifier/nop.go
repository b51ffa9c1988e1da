package notifier

import (
	"context"
	"launchpad/pkg/domain"
	"launchpad/pkg/logger"

	"go.uber.org/zap"
)

// Nop is used when no delivery channel is configured. The inquiry is written
// to the log, which is then the only place it can be found.
type Nop struct{}

var _ Notifier = Nop{}

// Deliver logs the inquiry and always succeeds.
func (Nop) Deliver(ctx context.Context, inquiry domain.Inquiry) error {
	logger.Info(ctx, "inquiry received without a delivery channel",
		zap.String("name", inquiry.Name),
		zap.String("email", inquiry.Email),
		zap.String("message", inquiry.Message))

	return nil
}
