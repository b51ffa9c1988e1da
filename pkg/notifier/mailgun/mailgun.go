// Package mailgun provides a notifier.Notifier that emails inquiries through
// the Mailgun API.
package mailgun

import (
	"context"
	"errors"
	"fmt"
	"launchpad/pkg/domain"
	"launchpad/pkg/logger"
	"launchpad/pkg/notifier"
	"launchpad/pkg/serrors"
	"net/http"
	"net/mail"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single Send call when Options.Timeout is not set.
const DefaultTimeout = 30 * time.Second

// Options configures the Mailgun notifier.
type Options struct {
	// Domain is the Mailgun sending domain, e.g. "mg.example.com".
	Domain string
	// APIKey is the Mailgun private API key.
	APIKey string
	// APIBase overrides the API endpoint (EU region, tests). Empty keeps the SDK default.
	APIBase string
	// FromEmail and FromName make up the sender.
	FromEmail string
	FromName  string
	// Recipient receives every inquiry.
	Recipient string
	// Timeout bounds a single send.
	Timeout time.Duration
}

// Validate reports the first missing required option.
func (o Options) Validate() error {
	switch {
	case o.Domain == "":
		return errors.New("mailgun domain is required")
	case o.APIKey == "":
		return errors.New("mailgun api key is required")
	case o.FromEmail == "":
		return errors.New("sender address is required")
	case o.Recipient == "":
		return errors.New("recipient address is required")
	}

	return nil
}

// Notifier emails inquiries to a fixed recipient. It is safe for concurrent use.
type Notifier struct {
	opts      Options
	client    *mailgun.MailgunImpl
	templates *notifier.Templates
}

var _ notifier.Notifier = (*Notifier)(nil)

// New validates opts and creates a Notifier rendering messages with templates.
func New(opts Options, templates *notifier.Templates) (*Notifier, error) {
	if err := opts.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "invalid mailgun configuration")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	client := mailgun.NewMailgun(opts.Domain, opts.APIKey)
	if opts.APIBase != "" {
		client.SetAPIBase(opts.APIBase)
	}

	return &Notifier{
		opts:      opts,
		client:    client,
		templates: templates,
	}, nil
}

func (n *Notifier) sender() string {
	if n.opts.FromName == "" {
		return n.opts.FromEmail
	}

	return fmt.Sprintf("%s <%s>", n.opts.FromName, n.opts.FromEmail)
}

// Deliver emails the inquiry. Replies go straight to the visitor when the
// submitted email parses as an address; otherwise it only appears in the body.
func (n *Notifier) Deliver(ctx context.Context, inquiry domain.Inquiry) error {
	subject, err := n.templates.Subject(inquiry)
	if err != nil {
		return err //nolint: wrapcheck
	}
	text, err := n.templates.Text(inquiry)
	if err != nil {
		return err //nolint: wrapcheck
	}

	message := n.client.NewMessage(n.sender(), subject, text, n.opts.Recipient)
	if addr, err := mail.ParseAddress(inquiry.Email); err == nil {
		message.SetReplyTo(addr.Address)
	}

	sendCtx, cancel := context.WithTimeout(ctx, n.opts.Timeout)
	defer cancel()

	_, id, err := n.client.Send(sendCtx, message)
	if err != nil {
		return classify(sendCtx, err)
	}

	logger.Info(ctx, "inquiry emailed", zap.String("message_id", id))

	return nil
}

// classify maps a Send failure to a semantic kind where one applies.
func classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "mailgun send timed out")
	}

	switch status := mailgun.GetStatusFromErr(err); status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return serrors.Wrap(serrors.ErrUnauthorized, err, "mailgun rejected credentials")
	case http.StatusTooManyRequests:
		return serrors.Wrap(serrors.ErrRateLimited, err, "mailgun rate limited")
	}

	return fmt.Errorf("could not send email: %w", err)
}
