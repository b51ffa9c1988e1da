// Package whatsapp provides a notifier.Notifier that forwards inquiries as
// WhatsApp messages through the Twilio Messages REST API.
package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"launchpad/pkg/domain"
	"launchpad/pkg/logger"
	"launchpad/pkg/notifier"
	"launchpad/pkg/serrors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public Twilio REST API endpoint.
	DefaultBaseURL = "https://api.twilio.com"
	// DefaultTimeout bounds a single request when Options.Timeout is not set.
	DefaultTimeout = 15 * time.Second

	maxResponseBytes = 1 << 20
)

// Options configures the WhatsApp client.
type Options struct {
	// AccountSID and AuthToken authenticate against Twilio.
	AccountSID string
	AuthToken  string
	// From is the WhatsApp-enabled sender number, e.g. "+14155238886".
	From string
	// Recipient receives every inquiry, e.g. "+15551234567".
	Recipient string
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// Timeout bounds a single request when no http.Client is supplied.
	Timeout time.Duration
}

// Validate reports the first missing required option.
func (o Options) Validate() error {
	switch {
	case o.AccountSID == "":
		return errors.New("twilio account sid is required")
	case o.AuthToken == "":
		return errors.New("twilio auth token is required")
	case o.From == "":
		return errors.New("sender number is required")
	case o.Recipient == "":
		return errors.New("recipient number is required")
	}

	return nil
}

// Client sends inquiries over WhatsApp. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
	templates  *notifier.Templates
}

var _ notifier.Notifier = (*Client)(nil)

// New validates opts and constructs a Client. A nil httpClient gets a default
// client bounded by opts.Timeout.
func New(httpClient *http.Client, opts Options, templates *notifier.Templates) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "invalid whatsapp configuration")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		opts:       opts,
		templates:  templates,
	}, nil
}

// Address prefixes a phone number with the whatsapp: channel scheme Twilio expects.
func Address(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}

	return "whatsapp:" + number
}

// Deliver sends the rendered chat message to the configured recipient.
func (c *Client) Deliver(ctx context.Context, inquiry domain.Inquiry) error {
	// https://www.twilio.com/docs/messaging/api/message-resource#create-a-message-resource
	text, err := c.templates.Chat(inquiry)
	if err != nil {
		return err //nolint: wrapcheck
	}

	form := url.Values{}
	form.Set("To", Address(c.opts.Recipient))
	form.Set("From", Address(c.opts.From))
	form.Set("Body", text)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.opts.BaseURL, url.PathEscape(c.opts.AccountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.SetBasicAuth(c.opts.AccountSID, c.opts.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", ParseError(b))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "twilio rejected credentials: %s", ParseError(b))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("send failed with status %d: %s", resp.StatusCode, ParseError(b))
	}

	sid, err := ParseMessageSID(b)
	if err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	logger.Info(ctx, "inquiry sent via whatsapp", zap.String("sid", sid))

	return nil
}

// ParseMessageSID extracts the message SID from a successful create response.
func ParseMessageSID(b []byte) (string, error) {
	var sid string
	err := jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "sid" || d.Next() != jx.String {
			return d.Skip() //nolint: wrapcheck
		}
		v, err := d.Str()
		sid = v

		return err //nolint: wrapcheck
	})
	if err != nil {
		return "", err //nolint: wrapcheck
	}
	if sid == "" {
		return "", errors.New("response has no message sid")
	}

	return sid, nil
}

// ParseError returns a readable description of a Twilio error body. Bodies
// that are not Twilio JSON errors are returned trimmed.
func ParseError(b []byte) string {
	var (
		code    int64
		message string
	)
	err := jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "code":
			if d.Next() != jx.Number {
				return d.Skip() //nolint: wrapcheck
			}
			v, err := d.Int64()
			code = v

			return err //nolint: wrapcheck
		case "message":
			if d.Next() != jx.String {
				return d.Skip() //nolint: wrapcheck
			}
			v, err := d.Str()
			message = v

			return err //nolint: wrapcheck
		default:
			return d.Skip() //nolint: wrapcheck
		}
	})
	if err != nil || message == "" {
		return strings.TrimSpace(string(b))
	}
	if code != 0 {
		return fmt.Sprintf("%s (code %d)", message, code)
	}

	return message
}
