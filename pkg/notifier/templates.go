package notifier

import (
	"fmt"
	"launchpad/pkg/domain"

	"github.com/aymerick/raymond"
)

// Default handlebars sources. Outputs are plain text, hence triple-stash.
const (
	DefaultSubject = "New contact from {{{name}}}"
	DefaultText    = "Email: {{{email}}}\n\nMessage:\n{{{message}}}"
	DefaultChat    = "New {{{brand}}} inquiry from {{{name}}} ({{{email}}})"
)

// TemplateSources holds handlebars sources for notification messages. Empty
// fields fall back to the defaults.
type TemplateSources struct {
	Subject string
	Text    string
	Chat    string
}

// Templates renders notification messages for an inquiry. Available
// variables: name, email, message, brand.
type Templates struct {
	brand   string
	subject *raymond.Template
	text    *raymond.Template
	chat    *raymond.Template
}

// ParseTemplates parses the given sources for the given brand name.
func ParseTemplates(brand string, src TemplateSources) (*Templates, error) {
	parse := func(name, source, fallback string) (*raymond.Template, error) {
		if source == "" {
			source = fallback
		}
		tpl, err := raymond.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s template: %w", name, err)
		}

		return tpl, nil
	}

	subject, err := parse("subject", src.Subject, DefaultSubject)
	if err != nil {
		return nil, err
	}
	text, err := parse("text", src.Text, DefaultText)
	if err != nil {
		return nil, err
	}
	chat, err := parse("chat", src.Chat, DefaultChat)
	if err != nil {
		return nil, err
	}

	return &Templates{
		brand:   brand,
		subject: subject,
		text:    text,
		chat:    chat,
	}, nil
}

// MustDefaultTemplates returns the default templates and panics if they do not parse.
func MustDefaultTemplates(brand string) *Templates {
	t, err := ParseTemplates(brand, TemplateSources{})
	if err != nil {
		panic(err)
	}

	return t
}

func (t *Templates) exec(tpl *raymond.Template, inquiry domain.Inquiry) (string, error) {
	out, err := tpl.Exec(map[string]string{
		"name":    inquiry.Name,
		"email":   inquiry.Email,
		"message": inquiry.Message,
		"brand":   t.brand,
	})
	if err != nil {
		return "", fmt.Errorf("could not render template: %w", err)
	}

	return out, nil
}

// Subject renders the email subject line.
func (t *Templates) Subject(inquiry domain.Inquiry) (string, error) {
	return t.exec(t.subject, inquiry)
}

// Text renders the plain-text email body.
func (t *Templates) Text(inquiry domain.Inquiry) (string, error) {
	return t.exec(t.text, inquiry)
}

// Chat renders the short chat message.
func (t *Templates) Chat(inquiry domain.Inquiry) (string, error) {
	return t.exec(t.chat, inquiry)
}
