package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, landing page copy,
// contact delivery channels and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"1m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"45s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of a contact request body
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"65536" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// Pprof mounts net/http/pprof under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
		// CORSOrigin is the origin allowed to call the contact API ("*" for any)
		CORSOrigin string `env:"HTTP_CORS_ORIGIN" env-default:"*" yaml:"corsOrigin"`
	} `yaml:"http"`

	// Site holds the copy that differs between deployments of the landing page
	Site struct {
		// Brand is the company name used in the about section, footer and chat notifications
		Brand string `env:"SITE_BRAND" env-default:"LaunchPad" yaml:"brand"`
		// Product is the product name shown in the hero
		Product string `env:"SITE_PRODUCT" env-default:"KNOX AI" yaml:"product"`
		// Title is the HTML document title
		Title string `env:"SITE_TITLE" env-default:"KNOX AI - Launch your startup landing page in hours" yaml:"title"`
		// Description is used for the meta description and Open Graph tags
		Description string `env:"SITE_DESCRIPTION" env-default:"A beautiful, conversion-focused landing page template for early-stage startups." yaml:"description"` //nolint: lll
	} `yaml:"site"`

	// Contact configures where contact inquiries are delivered
	Contact struct {
		// Email delivers inquiries through Mailgun
		Email struct {
			// Enabled turns the email channel on
			Enabled bool `env:"CONTACT_EMAIL_ENABLED" env-default:"false" yaml:"enabled"`
			// Recipient receives every inquiry
			Recipient string `env:"CONTACT_EMAIL" yaml:"recipient"`
			// MailgunDomain is the Mailgun sending domain
			MailgunDomain string `env:"MAILGUN_DOMAIN" yaml:"mailgunDomain"`
			// MailgunAPIKey is the Mailgun private API key
			MailgunAPIKey string `env:"MAILGUN_API_KEY" yaml:"mailgunApiKey"`
			// MailgunAPIBase overrides the Mailgun endpoint, e.g. for the EU region
			MailgunAPIBase string `env:"MAILGUN_API_BASE" yaml:"mailgunApiBase"`
			// FromEmail is the sender address
			FromEmail string `env:"EMAIL_FROM_ADDRESS" yaml:"fromEmail"`
			// FromName is the sender display name
			FromName string `env:"EMAIL_FROM_NAME" env-default:"LaunchPad" yaml:"fromName"`
			// Timeout bounds a single send
			Timeout time.Duration `env:"CONTACT_EMAIL_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"email"`

		// WhatsApp delivers inquiries through the Twilio WhatsApp API
		WhatsApp struct {
			// Enabled turns the WhatsApp channel on
			Enabled bool `env:"CONTACT_WHATSAPP_ENABLED" env-default:"false" yaml:"enabled"`
			// Recipient is the number that receives every inquiry
			Recipient string `env:"WHATSAPP_NUMBER" yaml:"recipient"`
			// From is the WhatsApp-enabled sender number
			From string `env:"WHATSAPP_FROM" yaml:"from"`
			// AccountSID is the Twilio account SID
			AccountSID string `env:"TWILIO_ACCOUNT_SID" yaml:"accountSid"`
			// AuthToken is the Twilio auth token
			AuthToken string `env:"TWILIO_AUTH_TOKEN" yaml:"authToken"`
			// BaseURL overrides the Twilio API endpoint
			BaseURL string `env:"TWILIO_BASE_URL" env-default:"https://api.twilio.com" yaml:"baseUrl"`
			// Timeout bounds a single request
			Timeout time.Duration `env:"CONTACT_WHATSAPP_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"whatsApp"`

		// Templates override the handlebars sources of notification messages
		Templates struct {
			Subject string `env:"CONTACT_TEMPLATE_SUBJECT" yaml:"subject"`
			Text    string `env:"CONTACT_TEMPLATE_TEXT" yaml:"text"`
			Chat    string `env:"CONTACT_TEMPLATE_CHAT" yaml:"chat"`
		} `yaml:"templates"`
	} `yaml:"contact"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads configuration from the optional dotenv file, the yaml file at
// configPath and the process environment, in increasing priority. A missing
// dotenv or yaml file is not an error; the environment and defaults are used.
func Load(configPath, envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read env file: %w", err)
		}
	}

	var cfg Config
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("could not read config: %w", err)
			}

			return &cfg, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not stat config: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
