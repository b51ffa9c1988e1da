package contact

import (
	"fmt"
	"launchpad/internal/config"
	"launchpad/pkg/metrics"
	"launchpad/pkg/notifier"
	"launchpad/pkg/notifier/mailgun"
	"launchpad/pkg/notifier/whatsapp"
	"net/http"
)

// Channel names used in logs and metric attributes.
const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

// ChannelOptions select and configure the delivery channels. A nil channel is disabled.
type ChannelOptions struct {
	Brand     string
	Templates notifier.TemplateSources
	Email     *mailgun.Options
	WhatsApp  *whatsapp.Options
}

// NewChannelOptions constructs ChannelOptions from the application config.
func NewChannelOptions(cfg *config.Config) ChannelOptions {
	opts := ChannelOptions{
		Brand: cfg.Site.Brand,
		Templates: notifier.TemplateSources{
			Subject: cfg.Contact.Templates.Subject,
			Text:    cfg.Contact.Templates.Text,
			Chat:    cfg.Contact.Templates.Chat,
		},
	}

	if email := cfg.Contact.Email; email.Enabled {
		opts.Email = &mailgun.Options{
			Domain:    email.MailgunDomain,
			APIKey:    email.MailgunAPIKey,
			APIBase:   email.MailgunAPIBase,
			FromEmail: email.FromEmail,
			FromName:  email.FromName,
			Recipient: email.Recipient,
			Timeout:   email.Timeout,
		}
	}

	if wa := cfg.Contact.WhatsApp; wa.Enabled {
		opts.WhatsApp = &whatsapp.Options{
			AccountSID: wa.AccountSID,
			AuthToken:  wa.AuthToken,
			From:       wa.From,
			Recipient:  wa.Recipient,
			BaseURL:    wa.BaseURL,
			Timeout:    wa.Timeout,
		}
	}

	return opts
}

// NewNotifier builds the notifier for the enabled channels. Without any
// channel it returns notifier.Nop. httpClient is used by the WhatsApp channel
// and may be nil.
func NewNotifier(opts ChannelOptions, httpClient *http.Client, m *metrics.Contact) (notifier.Notifier, error) {
	if opts.Email == nil && opts.WhatsApp == nil {
		return notifier.Nop{}, nil
	}

	templates, err := notifier.ParseTemplates(opts.Brand, opts.Templates)
	if err != nil {
		return nil, fmt.Errorf("could not parse notification templates: %w", err)
	}

	var channels []notifier.Channel
	if opts.Email != nil {
		n, err := mailgun.New(*opts.Email, templates)
		if err != nil {
			return nil, fmt.Errorf("could not create email channel: %w", err)
		}
		channels = append(channels, notifier.Channel{Name: ChannelEmail, Notifier: n})
	}
	if opts.WhatsApp != nil {
		n, err := whatsapp.New(httpClient, *opts.WhatsApp, templates)
		if err != nil {
			return nil, fmt.Errorf("could not create whatsapp channel: %w", err)
		}
		channels = append(channels, notifier.Channel{Name: ChannelWhatsApp, Notifier: n})
	}

	return notifier.NewFanout(m, channels...), nil
}
