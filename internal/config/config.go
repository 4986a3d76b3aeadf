package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidTimeout  = errors.New("timeout must be positive")
	ErrInvalidPort     = errors.New("port must be between 1 and 65535")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config is built once at startup and passed into constructors.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	SiteURL   string `env:"SITE_URL" envDefault:"https://openaria.app"`

	Facebook  FacebookConfig
	Stripe    StripeConfig
	Leads     LeadConfig
	Telemetry TelemetryConfig

	OutboundTimeout time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"5s"`
}

type FacebookConfig struct {
	AccessToken   string `env:"FB_ACCESS_TOKEN"`
	PixelID       string `env:"FB_PIXEL_ID"`
	APIVersion    string `env:"FB_API_VERSION" envDefault:"v18.0"`
	GraphBaseURL  string `env:"FB_GRAPH_BASE_URL" envDefault:"https://graph.facebook.com"`
	TestEventCode string `env:"FB_TEST_EVENT_CODE"`
}

type StripeConfig struct {
	WebhookSecret    string        `env:"STRIPE_WEBHOOK_SECRET"`
	WebhookTolerance time.Duration `env:"STRIPE_WEBHOOK_TOLERANCE" envDefault:"5m"`
}

type LeadConfig struct {
	WebhookURL        string        `env:"GHL_WEBHOOK_URL"`
	PropagateFailures bool          `env:"LEAD_PROPAGATE_FAILURES" envDefault:"false"`
	SimulationDelay   time.Duration `env:"LEAD_SIMULATION_DELAY" envDefault:"0s"`
}

// TelemetryConfig selects the OTLP collector. An empty endpoint keeps spans
// and metrics in process.
type TelemetryConfig struct {
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"openaria-tracking"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
}

// Load parses the process environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.SiteURL = strings.TrimRight(strings.TrimSpace(c.SiteURL), "/")
	c.Facebook.AccessToken = strings.TrimSpace(c.Facebook.AccessToken)
	c.Facebook.PixelID = strings.TrimSpace(c.Facebook.PixelID)
	c.Facebook.GraphBaseURL = strings.TrimRight(strings.TrimSpace(c.Facebook.GraphBaseURL), "/")
	c.Stripe.WebhookSecret = strings.TrimSpace(c.Stripe.WebhookSecret)
	c.Leads.WebhookURL = strings.TrimSpace(c.Leads.WebhookURL)
	c.Telemetry.OTLPEndpoint = strings.TrimSpace(c.Telemetry.OTLPEndpoint)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	if c.OutboundTimeout <= 0 {
		return fmt.Errorf("OUTBOUND_TIMEOUT: %w", ErrInvalidTimeout)
	}
	if c.Stripe.WebhookTolerance <= 0 {
		return fmt.Errorf("STRIPE_WEBHOOK_TOLERANCE: %w", ErrInvalidTimeout)
	}
	if c.Leads.SimulationDelay < 0 {
		return fmt.Errorf("LEAD_SIMULATION_DELAY: %w", ErrInvalidTimeout)
	}
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// FacebookConfigured reports whether both conversion API credentials are set.
func (c Config) FacebookConfigured() bool {
	return c.Facebook.AccessToken != "" && c.Facebook.PixelID != ""
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
